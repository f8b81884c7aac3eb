package handler

import (
	"encoding/json"
	"net/http"

	"mindtriage/internal/model"
	"mindtriage/internal/service"
	"mindtriage/internal/transport/rest/middleware"
)

// ScreeningHandler handles the answer-submission boundary
type ScreeningHandler struct {
	screeningSvc *service.ScreeningService
}

// NewScreeningHandler creates a new screening handler
func NewScreeningHandler(screeningSvc *service.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{screeningSvc: screeningSvc}
}

// SubmitAnswerRequest is a single real-time answer
type SubmitAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Value      bool   `json:"value"`
}

// SubmitAnswer handles POST /v1/screenings/answers. The response carries the
// locally decided escalation; nothing here waits on the referral collaborator.
func (h *ScreeningHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	decision := h.screeningSvc.SubmitAnswer(r.Context(), userID, req.QuestionID, req.Value)
	writeJSON(w, http.StatusOK, decision)
}

// EvaluateRequest is the end-of-screening evaluation request
type EvaluateRequest struct {
	Answers           model.AnswerSet           `json:"answers"`
	FunctionalScore   int                       `json:"functionalScore"`
	ContactPreference []model.ContactPreference `json:"contactPreference,omitempty"`
}

// Evaluate handles POST /v1/screenings/evaluate
func (h *ScreeningHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decision, err := h.screeningSvc.Complete(r.Context(), userID, req.Answers, req.FunctionalScore, req.ContactPreference)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, decision)
}
