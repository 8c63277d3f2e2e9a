package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// Server is the HTTP server surface around the signaling transport.
type Server struct {
	ws            http.Handler
	allowedOrigin string
	router        *mux.Router
	handler       http.Handler
}

// NewServer creates the HTTP server. ws handles WebSocket upgrades;
// allowedOrigin is the single origin granted cross-origin access
// ("*" for any).
func NewServer(ws http.Handler, allowedOrigin string) *Server {
	s := &Server{
		ws:            ws,
		allowedOrigin: allowedOrigin,
		router:        mux.NewRouter(),
	}

	s.setupRoutes()
	// CORS wraps the whole router so preflight requests are answered
	// even for method-restricted routes.
	s.handler = s.corsMiddleware(s.router)
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.Handle("/ws", s.ws)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// corsMiddleware applies the single-origin access policy.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only the single configured origin is ever granted; requests
		// from anywhere else get no CORS headers at all. Mirrors the
		// upgrade-side CheckOrigin.
		if s.allowedOrigin == "*" || r.Header.Get("Origin") == s.allowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "signaling",
	})
}

// respondJSON writes data as a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
