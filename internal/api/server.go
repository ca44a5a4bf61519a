// Package api provides the HTTP server for AnalyzeMe.
// It exposes the progression engine to the web client: event ingestion,
// level/streak/achievement queries, and backup/restore.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/analyzeme/analyzeme/internal/app/progression"
)

// Server is the AnalyzeMe HTTP API server.
type Server struct {
	progression    *ProgressionAPI
	metricsEnabled bool
	corsOrigins    []string
	version        string
	installID      string
}

// NewServer creates an API server over the progression facade.
func NewServer(facade *progression.Facade) *Server {
	return &Server{
		progression: NewProgressionAPI(facade),
		version:     "dev",
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetCORSOrigins sets the allowed CORS origins ("*" allows all).
func (s *Server) SetCORSOrigins(origins []string) { s.corsOrigins = origins }

// SetVersion sets the build version reported by /api/version.
func (s *Server) SetVersion(v string) { s.version = v }

// SetInstallID sets the installation id reported by /api/version.
func (s *Server) SetInstallID(id string) { s.installID = id }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version":    s.version,
			"install_id": s.installID,
		})
	})

	// Collaborator events feeding the progression engine
	r.Route("/api/events", func(r chi.Router) {
		r.Post("/analysis", s.progression.HandleAnalysisEvent)
		r.Post("/source", s.progression.HandleSourceEvent)
		r.Post("/export", s.progression.HandleExportEvent)
		r.Post("/copy", s.progression.HandleCopyEvent)
		r.Post("/open", s.progression.HandleOpenEvent)
	})

	// Progression queries and lifecycle
	r.Route("/api/progression", func(r chi.Router) {
		r.Get("/summary", s.progression.HandleSummary)
		r.Get("/level", s.progression.HandleLevel)
		r.Get("/streak", s.progression.HandleStreak)
		r.Get("/achievements", s.progression.HandleAchievements)
		r.Get("/history", s.progression.HandleHistory)
		r.Post("/notifications/next", s.progression.HandleNextNotification)
		r.Get("/export", s.progression.HandleExportState)
		r.Post("/import", s.progression.HandleImportState)
		r.Post("/reset", s.progression.HandleReset)
		r.Post("/theme", s.progression.HandleActivateTheme)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// corsMiddleware applies the configured CORS policy. The web client runs on
// a different origin during development.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := "*"
		if len(s.corsOrigins) > 0 {
			origin = s.corsOrigins[0]
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}
