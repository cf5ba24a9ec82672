package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"organizer/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := NewStore(ctx, logrus.New(), filepath.Join(t.TempDir(), "organizer.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(migrate.Up))
	t.Cleanup(func() {
		require.NoError(t, s.db.Close())
	})
	return s
}

func testTask(title string) models.Task {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	return models.Task{
		ID:        "task-" + title,
		Title:     title,
		Status:    models.StatusPending,
		Priority:  models.PriorityMedium,
		Tags:      models.StringList{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testEvent(id, title string, start time.Time) models.Event {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	return models.Event{
		ID:              id,
		Title:           title,
		StartTime:       start,
		EventType:       models.EventPersonal,
		Attendees:       models.StringList{},
		ReminderMinutes: models.DefaultReminderMinutes,
		CalendarName:    models.DefaultCalendar,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestTaskRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	due := time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC)
	task := testTask("Buy milk")
	task.Priority = models.PriorityHigh
	task.Description = "2 liters"
	task.Tags = models.StringList{"errand", "home", "dairy"}
	task.DueDate = &due

	created, err := s.CreateTask(ctx, task)
	require.NoError(t, err)
	require.Equal(t, task.ID, created.ID)

	got, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.Title, got.Title)
	require.Equal(t, task.Description, got.Description)
	require.Equal(t, task.Priority, got.Priority)
	require.Equal(t, task.Tags, got.Tags)
	require.NotNil(t, got.DueDate)
	require.True(t, due.Equal(*got.DueDate))
	require.True(t, task.CreatedAt.Equal(got.CreatedAt))
}

func TestTaskFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fixtures := []struct {
		id       string
		status   string
		priority string
	}{
		{"t1", models.StatusPending, models.PriorityHigh},
		{"t2", models.StatusCompleted, models.PriorityHigh},
		{"t3", models.StatusCompleted, models.PriorityLow},
		{"t4", models.StatusPending, models.PriorityLow},
	}
	for _, fx := range fixtures {
		task := testTask(fx.id)
		task.ID = fx.id
		task.Status = fx.status
		task.Priority = fx.priority
		_, err := s.CreateTask(ctx, task)
		require.NoError(t, err)
	}

	completed, err := s.GetTasks(ctx, models.TaskFilter{Status: models.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 2)
	for _, task := range completed {
		require.Equal(t, models.StatusCompleted, task.Status)
	}

	// Filters combine with AND.
	both, err := s.GetTasks(ctx, models.TaskFilter{Status: models.StatusCompleted, Priority: models.PriorityHigh})
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "t2", both[0].ID)

	all, err := s.GetTasks(ctx, models.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestTaskUpdatePreservesID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task := testTask("Draft")
	_, err := s.CreateTask(ctx, task)
	require.NoError(t, err)

	task.Title = "Final"
	task.Status = models.StatusCompleted
	updated, err := s.UpdateTask(ctx, task.ID, task)
	require.NoError(t, err)
	require.Equal(t, task.ID, updated.ID)
	require.Equal(t, "Final", updated.Title)
	require.Equal(t, models.StatusCompleted, updated.Status)
}

func TestTaskDeleteThenGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task := testTask("Ephemeral")
	_, err := s.CreateTask(ctx, task)
	require.NoError(t, err)

	deleted, err := s.DeleteTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, deleted.ID)

	_, err = s.GetTask(ctx, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	_, err = s.DeleteTask(ctx, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetTask(ctx, "missing")
	require.ErrorIs(t, err, ErrTaskNotFound)
	_, err = s.UpdateTask(ctx, "missing", testTask("x"))
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestEventTimeRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(15 * time.Minute)
	standup := testEvent("e1", "Standup", start)
	standup.EndTime = &end
	standup.EventType = models.EventMeeting
	_, err := s.CreateEvent(ctx, standup)
	require.NoError(t, err)

	covering := models.EventFilter{
		From: timePtr(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
		To:   timePtr(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)),
	}
	events, err := s.GetEvents(ctx, covering)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "Standup", events[0].Title)
	require.True(t, start.Equal(events[0].StartTime))
	require.NotNil(t, events[0].EndTime)
	require.True(t, end.Equal(*events[0].EndTime))

	excluding := models.EventFilter{
		From: timePtr(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)),
		To:   timePtr(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)),
	}
	events, err = s.GetEvents(ctx, excluding)
	require.NoError(t, err)
	require.Empty(t, events)

	typed, err := s.GetEvents(ctx, models.EventFilter{EventType: models.EventWork})
	require.NoError(t, err)
	require.Empty(t, typed)
}

func TestEventAttendeesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	event := testEvent("e1", "Planning", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	event.Attendees = models.StringList{"bob@example.com", "alice@example.com"}
	_, err := s.CreateEvent(ctx, event)
	require.NoError(t, err)

	got, err := s.GetEvent(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, event.Attendees, got.Attendees)
}

func TestEventsOrderedByStart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, fx := range []struct {
		id     string
		offset time.Duration
	}{
		{"late", 2 * time.Hour},
		{"early", -time.Hour},
		{"mid", time.Hour},
	} {
		_, err := s.CreateEvent(ctx, testEvent(fx.id, fx.id, base.Add(fx.offset)))
		require.NoError(t, err)
	}

	events, err := s.GetEvents(ctx, models.EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, "early", events[0].ID)
	require.Equal(t, "mid", events[1].ID)
	require.Equal(t, "late", events[2].ID)
}

func TestEventsOnDayBoundaries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	dayStart := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	for _, event := range []models.Event{
		testEvent("e1", "Midnight kickoff", dayStart),
		testEvent("e2", "Lunch", dayStart.Add(12*time.Hour)),
		testEvent("e3", "Tomorrow's kickoff", dayEnd),
	} {
		_, err := s.CreateEvent(ctx, event)
		require.NoError(t, err)
	}

	events, err := s.EventsOnDay(ctx, dayStart, dayEnd)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "e1", events[0].ID)
	require.Equal(t, "e2", events[1].ID)

	// Stats counts today's events over the same window.
	stats, err := s.Stats(ctx, dayStart, dayEnd)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TodayEvents)
}

func TestEventsToRemind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	soon := testEvent("soon", "Soon", now.Add(10*time.Minute))
	soon.ReminderMinutes = 15
	far := testEvent("far", "Far", now.Add(3*time.Hour))
	far.ReminderMinutes = 15
	past := testEvent("past", "Past", now.Add(-time.Hour))
	for _, event := range []models.Event{soon, far, past} {
		_, err := s.CreateEvent(ctx, event)
		require.NoError(t, err)
	}

	due, err := s.EventsToRemind(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, "soon", due[0].ID)

	require.NoError(t, s.MarkReminded(ctx, "soon"))
	due, err = s.EventsToRemind(ctx, now)
	require.NoError(t, err)
	require.Empty(t, due)

	require.ErrorIs(t, s.MarkReminded(ctx, "missing"), ErrEventNotFound)
}

func TestContactSearch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	contacts := []models.Contact{
		{ID: "c1", Name: "Alice Smith", Email: "alice@acme.io", Company: "Acme", Tags: models.StringList{"work"}, CreatedAt: now, UpdatedAt: now},
		{ID: "c2", Name: "Bob Jones", Email: "bob@example.com", Company: "Example", Tags: models.StringList{"friend"}, CreatedAt: now, UpdatedAt: now},
		{ID: "c3", Name: "Carol Acme", Email: "carol@other.net", Company: "Other", Tags: models.StringList{"work", "friend"}, CreatedAt: now, UpdatedAt: now},
	}
	for _, contact := range contacts {
		_, err := s.CreateContact(ctx, contact)
		require.NoError(t, err)
	}

	// Search spans name, email and company.
	found, err := s.GetContacts(ctx, models.ContactFilter{Search: "acme"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, "c1", found[0].ID)
	require.Equal(t, "c3", found[1].ID)

	byCompany, err := s.GetContacts(ctx, models.ContactFilter{Company: "Example"})
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	require.Equal(t, "c2", byCompany[0].ID)

	byTag, err := s.GetContacts(ctx, models.ContactFilter{Tag: "friend"})
	require.NoError(t, err)
	require.Len(t, byTag, 2)

	both, err := s.GetContacts(ctx, models.ContactFilter{Search: "acme", Tag: "work"})
	require.NoError(t, err)
	require.Len(t, both, 2)
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	dayStart, dayEnd := now.Truncate(24*time.Hour), now.Truncate(24*time.Hour).AddDate(0, 0, 1)

	done := testTask("done")
	done.ID = "done"
	done.Status = models.StatusCompleted
	pending := testTask("pending")
	pending.ID = "pending"
	for _, task := range []models.Task{done, pending} {
		_, err := s.CreateTask(ctx, task)
		require.NoError(t, err)
	}
	_, err := s.CreateEvent(ctx, testEvent("today", "Today", now.Add(2*time.Hour)))
	require.NoError(t, err)
	_, err = s.CreateEvent(ctx, testEvent("tomorrow", "Tomorrow", now.AddDate(0, 0, 1)))
	require.NoError(t, err)

	stats, err := s.Stats(ctx, dayStart, dayEnd)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalTasks)
	require.Equal(t, 2, stats.TotalEvents)
	require.Equal(t, 0, stats.TotalContacts)
	require.Equal(t, 1, stats.PendingTasks)
	require.Equal(t, 1, stats.TodayEvents)
}

func TestResetTables(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateTask(ctx, testTask("x"))
	require.NoError(t, err)
	require.NoError(t, s.ResetTables(ctx, []string{"tasks", "calendar_events", "contacts"}))

	tasks, err := s.GetTasks(ctx, models.TaskFilter{})
	require.NoError(t, err)
	require.Empty(t, tasks)

	require.Error(t, s.ResetTables(ctx, []string{"users; DROP TABLE tasks"}))
}

func timePtr(t time.Time) *time.Time { return &t }
