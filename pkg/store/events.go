package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"organizer/pkg/metrics"
	"organizer/pkg/models"
)

func (s *Store) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	defer observe("CreateEvent", time.Now())
	var createdEvent models.Event
	query := `
INSERT INTO calendar_events (id, title, description, start_time, end_time, location, event_type, attendees, reminder_minutes, calendar_name, all_day, reminded, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING *;`
	var err error
	for i := 0; i < retries; i++ {
		if err = s.db.QueryRowxContext(ctx, query,
			event.ID, event.Title, event.Description, event.StartTime, event.EndTime,
			event.Location, event.EventType, event.Attendees, event.ReminderMinutes,
			event.CalendarName, event.AllDay, event.Reminded,
			event.CreatedAt, event.UpdatedAt).StructScan(&createdEvent); err != nil {
			continue
		}
		return createdEvent, nil
	}
	metrics.DBErrCount.WithLabelValues("CreateEvent").Inc()
	return models.Event{}, fmt.Errorf("err creating event: %w", err)
}

func (s *Store) GetEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	defer observe("GetEvents", time.Now())
	query := `SELECT * FROM calendar_events WHERE 1=1`
	args := make([]interface{}, 0, 4)
	if filter.EventType != "" {
		query += ` AND event_type = ?`
		args = append(args, filter.EventType)
	}
	if filter.CalendarName != "" {
		query += ` AND calendar_name = ?`
		args = append(args, filter.CalendarName)
	}
	if filter.From != nil {
		query += ` AND start_time > ?`
		args = append(args, filter.From.UTC())
	}
	if filter.To != nil {
		query += ` AND start_time < ?`
		args = append(args, filter.To.UTC())
	}
	query += ` ORDER BY start_time, id`
	events := make([]models.Event, 0)
	var err error
	for i := 0; i < retries; i++ {
		if err = s.db.SelectContext(ctx, &events, query, args...); err != nil {
			continue
		}
		return events, nil
	}
	metrics.DBErrCount.WithLabelValues("GetEvents").Inc()
	return nil, fmt.Errorf("err getting events: %w", err)
}

func (s *Store) GetEvent(ctx context.Context, id string) (models.Event, error) {
	defer observe("GetEvent", time.Now())
	var event models.Event
	query := `
SELECT * FROM calendar_events
WHERE id = ?;`
	var err error
	for i := 0; i < retries; i++ {
		err = s.db.GetContext(ctx, &event, query, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Event{}, ErrEventNotFound
		case err != nil:
			continue
		}
		return event, nil
	}
	metrics.DBErrCount.WithLabelValues("GetEvent").Inc()
	return models.Event{}, fmt.Errorf("err getting event %s: %w", id, err)
}

func (s *Store) UpdateEvent(ctx context.Context, id string, event models.Event) (models.Event, error) {
	defer observe("UpdateEvent", time.Now())
	var updatedEvent models.Event
	query := `
UPDATE calendar_events
SET title = ?,
    description = ?,
    start_time = ?,
    end_time = ?,
    location = ?,
    event_type = ?,
    attendees = ?,
    reminder_minutes = ?,
    calendar_name = ?,
    all_day = ?,
    reminded = ?,
    updated_at = ?
WHERE id = ?
RETURNING *;`
	var err error
	for i := 0; i < retries; i++ {
		err = s.db.GetContext(ctx, &updatedEvent, query,
			event.Title, event.Description, event.StartTime, event.EndTime,
			event.Location, event.EventType, event.Attendees, event.ReminderMinutes,
			event.CalendarName, event.AllDay, event.Reminded, event.UpdatedAt, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Event{}, ErrEventNotFound
		case err != nil:
			continue
		}
		return updatedEvent, nil
	}
	metrics.DBErrCount.WithLabelValues("UpdateEvent").Inc()
	return models.Event{}, fmt.Errorf("err updating event %s: %w", id, err)
}

func (s *Store) DeleteEvent(ctx context.Context, id string) (models.Event, error) {
	defer observe("DeleteEvent", time.Now())
	var deletedEvent models.Event
	query := `
DELETE FROM calendar_events
WHERE id = ?
RETURNING *;`
	var err error
	for i := 0; i < retries; i++ {
		err = s.db.GetContext(ctx, &deletedEvent, query, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Event{}, ErrEventNotFound
		case err != nil:
			continue
		}
		return deletedEvent, nil
	}
	metrics.DBErrCount.WithLabelValues("DeleteEvent").Inc()
	return models.Event{}, fmt.Errorf("err deleting event %s: %w", id, err)
}

// EventsOnDay returns events starting within [dayStart, dayEnd), midnight
// inclusive. Stats counts today's events over the same window.
func (s *Store) EventsOnDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Event, error) {
	defer observe("EventsOnDay", time.Now())
	query := `
SELECT * FROM calendar_events
WHERE start_time >= ? AND start_time < ?
ORDER BY start_time, id;`
	events := make([]models.Event, 0)
	var err error
	for i := 0; i < retries; i++ {
		if err = s.db.SelectContext(ctx, &events, query, dayStart.UTC(), dayEnd.UTC()); err != nil {
			continue
		}
		return events, nil
	}
	metrics.DBErrCount.WithLabelValues("EventsOnDay").Inc()
	return nil, fmt.Errorf("err getting day's events: %w", err)
}

// EventsToRemind returns events whose reminder window covers now and that
// have not been reminded yet.
func (s *Store) EventsToRemind(ctx context.Context, now time.Time) ([]models.Event, error) {
	defer observe("EventsToRemind", time.Now())
	query := `
SELECT * FROM calendar_events
WHERE reminded = 0 AND start_time > ?
ORDER BY start_time;`
	var upcoming []models.Event
	var err error
	for i := 0; i < retries; i++ {
		if err = s.db.SelectContext(ctx, &upcoming, query, now.UTC()); err != nil {
			continue
		}
		due := make([]models.Event, 0, len(upcoming))
		for _, event := range upcoming {
			window := time.Duration(event.ReminderMinutes) * time.Minute
			if !event.StartTime.Add(-window).After(now) {
				due = append(due, event)
			}
		}
		return due, nil
	}
	metrics.DBErrCount.WithLabelValues("EventsToRemind").Inc()
	return nil, fmt.Errorf("err getting events to remind: %w", err)
}

func (s *Store) MarkReminded(ctx context.Context, id string) error {
	defer observe("MarkReminded", time.Now())
	query := `UPDATE calendar_events SET reminded = 1 WHERE id = ?`
	var err error
	for i := 0; i < retries; i++ {
		var res sql.Result
		if res, err = s.db.ExecContext(ctx, query, id); err != nil {
			continue
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrEventNotFound
		}
		return nil
	}
	metrics.DBErrCount.WithLabelValues("MarkReminded").Inc()
	return fmt.Errorf("err marking event %s reminded: %w", id, err)
}
