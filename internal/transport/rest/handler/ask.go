package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"sawa/internal/service"
)

// AskHandler handles corpus question-answering endpoints
type AskHandler struct {
	askSvc *service.AskService
}

// NewAskHandler creates a new ask handler
func NewAskHandler(askSvc *service.AskService) *AskHandler {
	return &AskHandler{askSvc: askSvc}
}

// AskRequest is the request body for corpus questions
type AskRequest struct {
	Query string `json:"query"`
}

// Ask handles POST /v1/ask
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	resp, err := h.askSvc.Ask(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCorpus) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
