package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"sawa/internal/service"
	"sawa/internal/transport/rest/handler"
	"sawa/internal/transport/rest/middleware"
	"sawa/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	AskService     *service.AskService
	CorpusService  *service.CorpusService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	askHandler := handler.NewAskHandler(c.AskService)
	corpusHandler := handler.NewCorpusHandler(c.CorpusService)
	wsHandler := ws.NewHandler(c.WSHub)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes: the coaching dialogue itself needs no account
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/answers", sessionHandler.Answer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/export", sessionHandler.Export).Methods("GET", "OPTIONS")
	v1.HandleFunc("/ask", askHandler.Ask).Methods("POST", "OPTIONS")

	// WebSocket routes
	v1.HandleFunc("/ws/sessions/{id}/watch", wsHandler.WatchSession).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Coach routes (require coach auth)
	coachRoutes := v1.NewRoute().Subrouter()
	coachRoutes.Use(authMW.RequireCoach)

	coachRoutes.HandleFunc("/sessions", sessionHandler.List).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	coachRoutes.HandleFunc("/corpus", corpusHandler.Ingest).Methods("POST", "OPTIONS")
	coachRoutes.HandleFunc("/corpus", corpusHandler.Size).Methods("GET", "OPTIONS")

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
