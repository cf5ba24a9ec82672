package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"organizer/pkg/models"
)

func (s *Server) createEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	createdEvent, err := s.app.CreateEvent(ctx, req)
	if err != nil {
		s.writeError(w, err, "creating event")
		return
	}
	s.writeResponse(w, http.StatusCreated, createdEvent)
}

func (s *Server) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := models.EventFilter{
		EventType:    r.URL.Query().Get("event_type"),
		CalendarName: r.URL.Query().Get("calendar_name"),
	}
	for _, bound := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		raw := r.URL.Query().Get(bound.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			s.writeResponse(w, http.StatusBadRequest, models.ValidationError{Field: bound.name, Reason: "must be RFC3339"})
			return
		}
		*bound.dst = &t
	}
	events, err := s.app.GetEvents(ctx, filter)
	if err != nil {
		s.writeError(w, err, "getting events")
		return
	}
	s.writeResponse(w, http.StatusOK, events)
}

func (s *Server) todayEventsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := s.app.TodayEvents(ctx)
	if err != nil {
		s.writeError(w, err, "getting today's events")
		return
	}
	s.writeResponse(w, http.StatusOK, events)
}

func (s *Server) getEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	event, err := s.app.GetEvent(ctx, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err, "getting event")
		return
	}
	s.writeResponse(w, http.StatusOK, event)
}

func (s *Server) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	updatedEvent, err := s.app.UpdateEvent(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeError(w, err, "updating event")
		return
	}
	s.writeResponse(w, http.StatusOK, updatedEvent)
}

func (s *Server) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.app.DeleteEvent(ctx, chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err, "deleting event")
		return
	}
	s.writeResponse(w, http.StatusNoContent, nil)
}
