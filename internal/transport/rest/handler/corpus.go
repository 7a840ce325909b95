package handler

import (
	"encoding/json"
	"net/http"

	"sawa/internal/service"
)

// CorpusHandler handles corpus administration endpoints
type CorpusHandler struct {
	corpusSvc *service.CorpusService
}

// NewCorpusHandler creates a new corpus handler
func NewCorpusHandler(corpusSvc *service.CorpusService) *CorpusHandler {
	return &CorpusHandler{corpusSvc: corpusSvc}
}

// IngestRequest is the request body for corpus ingestion
type IngestRequest struct {
	Text string `json:"text"`
}

// Ingest handles POST /v1/corpus (coach only)
func (h *CorpusHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	count, err := h.corpusSvc.IngestText(r.Context(), req.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"chunks": count})
}

// Size handles GET /v1/corpus (coach only)
func (h *CorpusHandler) Size(w http.ResponseWriter, r *http.Request) {
	count, err := h.corpusSvc.Size(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"chunks": count})
}
