package api

import (
	"context"
	"net/http"
	"time"

	"github.com/vytor/nerdeck/internal/logger"
)

// handleHealth is the liveness probe; it only shows the process is serving.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady reports 503 until the database answers a ping.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if s.DB == nil {
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"error": "Database unavailable"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		log.Warn("readiness check failed - database: %v", err)
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"error": "Database unavailable"})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
