package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"mindtriage/internal/service"
	"mindtriage/internal/transport/rest/handler"
	"mindtriage/internal/transport/rest/middleware"
	"mindtriage/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	SessionService   *service.SessionService
	ScreeningService *service.ScreeningService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(c.SessionService)
	screeningHandler := handler.NewScreeningHandler(c.ScreeningService)
	wsHandler := ws.NewHandler(c.WSHub, c.SessionService)

	authMW := middleware.NewAuthMiddleware(c.SessionService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/escalations", wsHandler.EscalationWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Screening routes (require session auth)
	screeningRoutes := v1.NewRoute().Subrouter()
	screeningRoutes.Use(authMW.RequireSession)

	screeningRoutes.HandleFunc("/screenings/answers", screeningHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	screeningRoutes.HandleFunc("/screenings/evaluate", screeningHandler.Evaluate).Methods("POST", "OPTIONS")

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
