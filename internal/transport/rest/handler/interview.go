package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"prepwise/internal/model"
	"prepwise/internal/service"
	"prepwise/internal/transport/rest/middleware"
)

// InterviewHandler handles interview instance, submission and feedback
// endpoints
type InterviewHandler struct {
	interviewSvc  *service.InterviewService
	submissionSvc *service.SubmissionService
	feedbackSvc   *service.FeedbackService
	aggregateSvc  *service.AggregateService
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(
	interviewSvc *service.InterviewService,
	submissionSvc *service.SubmissionService,
	feedbackSvc *service.FeedbackService,
	aggregateSvc *service.AggregateService,
) *InterviewHandler {
	return &InterviewHandler{
		interviewSvc:  interviewSvc,
		submissionSvc: submissionSvc,
		feedbackSvc:   feedbackSvc,
		aggregateSvc:  aggregateSvc,
	}
}

// CreateInterviewRequest is the request body for get-or-create
type CreateInterviewRequest struct {
	TemplateID string `json:"templateId"`
}

// Create handles POST /v1/interviews (idempotent get-or-create)
func (h *InterviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TemplateID == "" {
		writeError(w, http.StatusBadRequest, "templateId is required")
		return
	}

	interview, err := h.interviewSvc.GetOrCreateInterview(r.Context(), userID, req.TemplateID, middleware.IsAdmin(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, interview)
}

// Get handles GET /v1/interviews/{interviewId}
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	interviewID := mux.Vars(r)["interviewId"]
	userID := middleware.GetUserID(r.Context())

	interview, err := h.interviewSvc.GetInterview(r.Context(), interviewID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if interview.UserID != userID {
		writeError(w, http.StatusNotFound, service.ErrInterviewNotFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, interview)
}

// Submit handles POST /v1/interviews/{interviewId}/rounds/{roundId}/submit
func (h *InterviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := middleware.GetUserID(r.Context())

	var req model.SubmitRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.submissionSvc.SubmitRound(r.Context(), vars["interviewId"], userID, vars["roundId"], &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

// Complete handles POST /v1/interviews/{interviewId}/rounds/{roundId}/complete
func (h *InterviewHandler) Complete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.interviewSvc.MarkRoundComplete(r.Context(), vars["interviewId"], vars["roundId"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}

// RoundFeedback handles GET /v1/interviews/{interviewId}/rounds/{roundId}/feedback
func (h *InterviewHandler) RoundFeedback(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := middleware.GetUserID(r.Context())

	feedback, err := h.feedbackSvc.GetRoundFeedback(r.Context(), vars["interviewId"], userID, vars["roundId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if feedback == nil {
		writeError(w, http.StatusNotFound, "no feedback for this round yet")
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

// CumulativeFeedback handles GET /v1/interviews/{interviewId}/feedback
func (h *InterviewHandler) CumulativeFeedback(w http.ResponseWriter, r *http.Request) {
	interviewID := mux.Vars(r)["interviewId"]
	userID := middleware.GetUserID(r.Context())

	summary, err := h.aggregateSvc.GetCumulativeFeedback(r.Context(), interviewID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
