package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"organizer/pkg/models"
)

func (s *Organizer) CreateEvent(ctx context.Context, req models.EventRequest) (models.Event, error) {
	now := s.now()
	event, err := materializeEvent(req, uuid.NewString(), now, now)
	if err != nil {
		return models.Event{}, err
	}
	createdEvent, err := s.store.CreateEvent(ctx, event)
	if err != nil {
		return models.Event{}, fmt.Errorf("err creating event: %w", err)
	}
	s.notify(ctx, fmt.Sprintf("event created: %s", createdEvent.Title))
	return createdEvent, nil
}

func (s *Organizer) GetEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	if filter.EventType != "" && !models.ValidEventType(filter.EventType) {
		return nil, models.ValidationError{Field: "event_type", Reason: "unknown event type"}
	}
	events, err := s.store.GetEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("err getting events from store: %w", err)
	}
	return events, nil
}

func (s *Organizer) GetEvent(ctx context.Context, id string) (models.Event, error) {
	return s.store.GetEvent(ctx, id)
}

func (s *Organizer) UpdateEvent(ctx context.Context, id string, req models.EventRequest) (models.Event, error) {
	existing, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return models.Event{}, err
	}
	event, err := materializeEvent(req, id, existing.CreatedAt, s.now())
	if err != nil {
		return models.Event{}, err
	}
	// A rescheduled event becomes eligible for reminding again.
	if event.StartTime.Equal(existing.StartTime) {
		event.Reminded = existing.Reminded
	}
	return s.store.UpdateEvent(ctx, id, event)
}

func (s *Organizer) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.store.DeleteEvent(ctx, id); err != nil {
		return err
	}
	return nil
}

func materializeEvent(req models.EventRequest, id string, createdAt, now time.Time) (models.Event, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return models.Event{}, models.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if req.StartTime == nil {
		return models.Event{}, models.ValidationError{Field: "start_time", Reason: "must be set"}
	}
	eventType := strOrDefault(req.EventType, models.EventPersonal)
	if !models.ValidEventType(eventType) {
		return models.Event{}, models.ValidationError{Field: "event_type", Reason: "unknown event type"}
	}
	reminder := models.DefaultReminderMinutes
	if req.ReminderMinutes != nil {
		if *req.ReminderMinutes < 0 {
			return models.Event{}, models.ValidationError{Field: "reminder_minutes", Reason: "must not be negative"}
		}
		reminder = *req.ReminderMinutes
	}
	event := models.Event{
		ID:              id,
		Title:           strings.TrimSpace(*req.Title),
		Description:     strOrDefault(req.Description, ""),
		StartTime:       req.StartTime.UTC(),
		Location:        strOrDefault(req.Location, ""),
		EventType:       eventType,
		Attendees:       tagsOrEmpty(req.Attendees),
		ReminderMinutes: reminder,
		CalendarName:    strOrDefault(req.CalendarName, models.DefaultCalendar),
		CreatedAt:       createdAt,
		UpdatedAt:       now,
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}
	if req.EndTime != nil {
		end := req.EndTime.UTC()
		if !end.After(event.StartTime) {
			return models.Event{}, models.ValidationError{Field: "end_time", Reason: "must be after start_time"}
		}
		event.EndTime = &end
	}
	return event, nil
}
