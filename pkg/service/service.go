// Package service carries the organizer's business rules: payload
// validation, identifier and timestamp assignment, optional-field
// defaulting and update semantics. Updates are full replacements
// (PUT semantics): absent optional fields fall back to the same
// defaults as on create, absent required fields fail validation.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"organizer/pkg/models"
)

type Notifier interface {
	Notify(ctx context.Context, message string) error
}

type Store interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	UpdateTask(ctx context.Context, id string, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, id string) (models.Task, error)

	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
	GetEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (models.Event, error)
	UpdateEvent(ctx context.Context, id string, event models.Event) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) (models.Event, error)
	EventsOnDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Event, error)

	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	UpdateContact(ctx context.Context, id string, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) (models.Contact, error)

	Stats(ctx context.Context, dayStart, dayEnd time.Time) (models.Stats, error)
	Ping(ctx context.Context) error
}

type Organizer struct {
	log      *logrus.Entry
	store    Store
	notifier Notifier
	now      func() time.Time
}

func NewOrganizer(log *logrus.Logger, store Store, notifier Notifier) *Organizer {
	s := Organizer{
		log:      log.WithField("component", "service"),
		store:    store,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
	return &s
}

func (s *Organizer) Health(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Organizer) Stats(ctx context.Context) (models.Stats, error) {
	dayStart, dayEnd := dayBounds(s.now())
	stats, err := s.store.Stats(ctx, dayStart, dayEnd)
	if err != nil {
		return models.Stats{}, fmt.Errorf("err getting stats from store: %w", err)
	}
	stats.GeneratedAt = s.now()
	return stats, nil
}

// TodayEvents returns events starting within the current UTC day, midnight
// inclusive, over the same window Stats counts.
func (s *Organizer) TodayEvents(ctx context.Context) ([]models.Event, error) {
	dayStart, dayEnd := dayBounds(s.now())
	events, err := s.store.EventsOnDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("err getting today's events from store: %w", err)
	}
	return events, nil
}

func (s *Organizer) TodaySummary(ctx context.Context) (models.Summary, error) {
	events, err := s.TodayEvents(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	pending, err := s.store.GetTasks(ctx, models.TaskFilter{Status: models.StatusPending})
	if err != nil {
		return models.Summary{}, fmt.Errorf("err getting pending tasks from store: %w", err)
	}
	shown := pending
	if len(shown) > 5 {
		shown = shown[:5]
	}
	return models.Summary{
		Date:         s.now().Format("2006-01-02"),
		EventCount:   len(events),
		Events:       events,
		PendingCount: len(pending),
		PendingTasks: shown,
	}, nil
}

func (s *Organizer) notify(ctx context.Context, message string) {
	if err := s.notifier.Notify(ctx, message); err != nil {
		s.log.Errorf("err notifying: %v", err)
	}
}

// dayBounds returns the half-open [start, end) interval of the UTC day
// containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func strOrDefault(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func tagsOrEmpty(p *models.StringList) models.StringList {
	if p == nil {
		return models.StringList{}
	}
	return *p
}
