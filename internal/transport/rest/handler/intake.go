package handler

import (
	"encoding/json"
	"html"
	"net/http"
	"strings"

	"intakeflow/internal/model"
	"intakeflow/internal/service"
)

// IntakeHandler handles the questionnaire endpoints
type IntakeHandler struct {
	intakeSvc       *service.IntakeService
	schedulerSvc    *service.SchedulerService
	autocompleteSvc *service.AutocompleteService
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intakeSvc *service.IntakeService, schedulerSvc *service.SchedulerService, autocompleteSvc *service.AutocompleteService) *IntakeHandler {
	return &IntakeHandler{
		intakeSvc:       intakeSvc,
		schedulerSvc:    schedulerSvc,
		autocompleteSvc: autocompleteSvc,
	}
}

// AskQuestion handles POST /v1/ask_questions. Pure read: no answer is
// recorded and no session state changes.
func (h *IntakeHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var req model.AskQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q := h.intakeSvc.NextQuestion(req.Category, req.Context)
	if q == nil {
		writeJSON(w, http.StatusOK, model.AskQuestionResponse{NextQuestion: nil})
		return
	}
	writeJSON(w, http.StatusOK, model.AskQuestionResponse{
		NextQuestion: &q.Text,
		Type:         q.Type,
		Options:      q.Options,
		Conditionals: q.Conditionals,
	})
}

// SubmitAnswer handles POST /v1/submit_answer, the main driver endpoint.
func (h *IntakeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Answer = sanitize(req.Answer)

	turn := h.intakeSvc.Advance(r.Context(), &req)
	writeJSON(w, http.StatusOK, turn)
}

// PredictCategory handles POST /v1/predict_category
func (h *IntakeHandler) PredictCategory(w http.ResponseWriter, r *http.Request) {
	var req model.PredictCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat := h.schedulerSvc.PredictCategory(r.Context(), sanitize(req.Complaint))
	writeJSON(w, http.StatusOK, categoryResponse(cat))
}

// PredictNextCategory handles POST /v1/predict_next_category
func (h *IntakeHandler) PredictNextCategory(w http.ResponseWriter, r *http.Request) {
	var req model.PredictNextCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat := h.schedulerSvc.PredictNextCategory(r.Context(), req.Context, req.AskedCategories)
	writeJSON(w, http.StatusOK, categoryResponse(cat))
}

// Autocomplete handles POST /v1/autocomplete
func (h *IntakeHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	var req model.AutocompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Query = sanitize(req.Query)

	options := h.autocompleteSvc.Suggest(r.Context(), &req)
	if options == nil {
		options = []string{}
	}
	writeJSON(w, http.StatusOK, model.AutocompleteResponse{Options: options})
}

func categoryResponse(cat string) model.PredictCategoryResponse {
	if cat == "" {
		return model.PredictCategoryResponse{Category: nil}
	}
	return model.PredictCategoryResponse{Category: &cat}
}

// sanitize trims and HTML-escapes free-text input at the boundary.
func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
