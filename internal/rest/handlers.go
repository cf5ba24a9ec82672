package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"organizer/pkg/models"
	"organizer/pkg/store"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) versionHandler(w http.ResponseWriter, _ *http.Request) {
	_, err := fmt.Fprintf(w, "%s\n", s.version)
	if err != nil {
		s.log.Warnf("err during writing to connection: %v", err)
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	if err := s.app.Health(r.Context()); err != nil {
		s.log.Warnf("health check failed: %v", err)
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	s.writeResponse(w, code, map[string]string{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) todaySummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.app.TodaySummary(r.Context())
	if err != nil {
		s.log.Warnf("err during getting today summary: %v", err)
		s.writeResponse(w, http.StatusInternalServerError, err)
		return
	}
	s.writeResponse(w, http.StatusOK, summary)
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.app.Stats(r.Context())
	if err != nil {
		s.log.Warnf("err during getting stats: %v", err)
		s.writeResponse(w, http.StatusInternalServerError, err)
		return
	}
	s.writeResponse(w, http.StatusOK, stats)
}

// writeError maps the service error taxonomy onto status codes:
// validation errors are 400, missing records 404, everything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error, what string) {
	var ve models.ValidationError
	switch {
	case errors.As(err, &ve):
		s.writeResponse(w, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrEventNotFound),
		errors.Is(err, store.ErrContactNotFound):
		s.writeResponse(w, http.StatusNotFound, err)
	default:
		s.log.Warnf("err during %s: %v", what, err)
		s.writeResponse(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) writeResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusNoContent {
		return
	}
	if x, ok := data.(error); ok {
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: x.Error()}); err != nil {
			s.log.Warnf("err during encoding error: %v", err)
		}
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warnf("err during encoding response: %v", err)
	}
}
