package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sawa/internal/model"
	"sawa/internal/service"
)

// SessionHandler handles coaching session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	state, next, err := h.sessionSvc.Initialize(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":    state.ID,
		"next":  next,
		"state": state,
	})
}

// AnswerRequest is the request body for submitting a facet answer. State is
// an optional client-echoed snapshot consulted only when the stores have no
// record of the session.
type AnswerRequest struct {
	Facet  string              `json:"facet"`
	Answer string              `json:"answer"`
	State  *model.SessionState `json:"state,omitempty"`
}

// Answer handles POST /v1/sessions/{id}/answers
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Facet == "" {
		writeError(w, http.StatusBadRequest, "facet is required")
		return
	}
	facet, ok := model.ParseFacet(req.Facet)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown facet: "+req.Facet)
		return
	}

	state, evaluation, next, err := h.sessionSvc.Answer(r.Context(), id, facet, req.Answer, req.State)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"evaluation": evaluation,
		"next":       next,
		"state":      state,
	})
}

// Export handles GET /v1/sessions/{id}/export
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	markdown, err := h.sessionSvc.Export(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"markdown": markdown})
}

// Get handles GET /v1/sessions/{id} (coach only)
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	state, err := h.sessionSvc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// List handles GET /v1/sessions (coach only)
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := int64(20)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.ParseInt(limitStr, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	states, err := h.sessionSvc.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": states})
}
