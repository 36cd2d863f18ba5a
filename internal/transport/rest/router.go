package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"intakeflow/internal/service"
	"intakeflow/internal/transport/rest/handler"
	"intakeflow/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService         *service.AuthService
	IntakeService       *service.IntakeService
	SchedulerService    *service.SchedulerService
	AutocompleteService *service.AutocompleteService
	SummaryService      *service.SummaryService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	intakeHandler := handler.NewIntakeHandler(c.IntakeService, c.SchedulerService, c.AutocompleteService)
	summaryHandler := handler.NewSummaryHandler(c.SummaryService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public intake routes: the patient client holds all session state
	v1.HandleFunc("/ask_questions", intakeHandler.AskQuestion).Methods("POST", "OPTIONS")
	v1.HandleFunc("/submit_answer", intakeHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/predict_category", intakeHandler.PredictCategory).Methods("POST", "OPTIONS")
	v1.HandleFunc("/predict_next_category", intakeHandler.PredictNextCategory).Methods("POST", "OPTIONS")
	v1.HandleFunc("/autocomplete", intakeHandler.Autocomplete).Methods("POST", "OPTIONS")
	v1.HandleFunc("/generate_summary", summaryHandler.Generate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Clinician routes (require auth)
	clinicianRoutes := v1.NewRoute().Subrouter()
	clinicianRoutes.Use(authMW.RequireClinician)
	clinicianRoutes.HandleFunc("/summaries", summaryHandler.List).Methods("GET", "OPTIONS")

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
