// Package worker sends event reminders and the daily review.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"organizer/pkg/models"
)

type Store interface {
	EventsToRemind(ctx context.Context, now time.Time) ([]models.Event, error)
	MarkReminded(ctx context.Context, id string) error
}

type App interface {
	TodaySummary(ctx context.Context) (models.Summary, error)
}

type Notifier interface {
	Notify(ctx context.Context, message string) error
}

type Worker struct {
	log      *logrus.Entry
	store    Store
	app      App
	notifier Notifier

	checkEvery time.Duration
	reviewHour int
}

func New(log *logrus.Logger, store Store, app App, notifier Notifier, checkEvery time.Duration, reviewHour int) *Worker {
	return &Worker{
		log:        log.WithField("component", "worker"),
		store:      store,
		app:        app,
		notifier:   notifier,
		checkEvery: checkEvery,
		reviewHour: reviewHour,
	}
}

// Run schedules the reminder check and the daily review and blocks until
// ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", w.checkEvery), func() {
		if err := w.sendReminders(ctx); err != nil {
			w.log.Errorf("err sending reminders: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("err scheduling reminder check: %w", err)
	}
	if _, err := c.AddFunc(fmt.Sprintf("0 %d * * *", w.reviewHour), func() {
		if err := w.sendDailyReview(ctx); err != nil {
			w.log.Errorf("err sending daily review: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("err scheduling daily review: %w", err)
	}
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (w *Worker) sendReminders(ctx context.Context) error {
	events, err := w.store.EventsToRemind(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	for _, event := range events {
		msg := fmt.Sprintf("Reminder: %s at %s", event.Title, event.StartTime.Format("Jan 2 15:04"))
		if err = w.notifier.Notify(ctx, msg); err != nil {
			return fmt.Errorf("err notifying about event %s: %w", event.ID, err)
		}
		if err = w.store.MarkReminded(ctx, event.ID); err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) sendDailyReview(ctx context.Context) error {
	summary, err := w.app.TodaySummary(ctx)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Good morning! %d events and %d pending tasks today.",
		summary.EventCount, summary.PendingCount)
	return w.notifier.Notify(ctx, msg)
}
