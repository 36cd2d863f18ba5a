package handler

import (
	"encoding/json"
	"net/http"

	"intakeflow/internal/model"
	"intakeflow/internal/service"
)

// SummaryHandler handles summary generation and the clinician archive
type SummaryHandler struct {
	summarySvc *service.SummaryService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summarySvc *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summarySvc: summarySvc}
}

// Generate handles POST /v1/generate_summary. Oracle failures surface in
// the payload as success=false, not as an HTTP error.
func (h *SummaryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.summarySvc.Generate(r.Context(), req.Context)
	writeJSON(w, http.StatusOK, result)
}

// List handles GET /v1/summaries (clinician only)
func (h *SummaryHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.summarySvc.List(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summaries == nil {
		summaries = []*model.Summary{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"summaries": summaries})
}
