package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"prepwise/internal/service"
	"prepwise/internal/transport/rest/handler"
	"prepwise/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService         *service.AuthService
	TemplateService     *service.TemplateService
	QuestionBankService *service.QuestionBankService
	InterviewService    *service.InterviewService
	SubmissionService   *service.SubmissionService
	FeedbackService     *service.FeedbackService
	AggregateService    *service.AggregateService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	templateHandler := handler.NewTemplateHandler(c.TemplateService)
	bankHandler := handler.NewQuestionBankHandler(c.QuestionBankService)
	interviewHandler := handler.NewInterviewHandler(c.InterviewService, c.SubmissionService, c.FeedbackService, c.AggregateService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/candidate", authHandler.CandidateToken).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Template reads are role-aware: admins see inactive templates too
	sharedRoutes := v1.NewRoute().Subrouter()
	sharedRoutes.Use(authMW.RequireAuth)
	sharedRoutes.HandleFunc("/templates", templateHandler.List).Methods("GET", "OPTIONS")
	sharedRoutes.HandleFunc("/templates/{templateId}", templateHandler.Get).Methods("GET", "OPTIONS")

	// Admin routes
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)
	adminRoutes.HandleFunc("/templates", templateHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/templates/{templateId}", templateHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/templates/{templateId}", templateHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/questionbanks", bankHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/questionbanks", bankHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/questionbanks/{bankId}", bankHandler.Get).Methods("GET", "OPTIONS")

	// Candidate routes
	candidateRoutes := v1.NewRoute().Subrouter()
	candidateRoutes.Use(authMW.RequireCandidate)
	candidateRoutes.HandleFunc("/interviews", interviewHandler.Create).Methods("POST", "OPTIONS")
	candidateRoutes.HandleFunc("/interviews/{interviewId}", interviewHandler.Get).Methods("GET", "OPTIONS")
	candidateRoutes.HandleFunc("/interviews/{interviewId}/feedback", interviewHandler.CumulativeFeedback).Methods("GET", "OPTIONS")
	candidateRoutes.HandleFunc("/interviews/{interviewId}/rounds/{roundId}/submit", interviewHandler.Submit).Methods("POST", "OPTIONS")
	candidateRoutes.HandleFunc("/interviews/{interviewId}/rounds/{roundId}/complete", interviewHandler.Complete).Methods("POST", "OPTIONS")
	candidateRoutes.HandleFunc("/interviews/{interviewId}/rounds/{roundId}/feedback", interviewHandler.RoundFeedback).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
