package service

import (
	"context"
	"strings"
	"time"

	"organizer/pkg/models"
	"organizer/pkg/store"
)

type fakeNotifier struct{}

func (fakeNotifier) Notify(context.Context, string) error { return nil }

// fakeStore keeps records in memory, preserving insertion order.
type fakeStore struct {
	tasks    map[string]*models.Task
	events   map[string]*models.Event
	contacts map[string]*models.Contact

	taskIDs    []string
	eventIDs   []string
	contactIDs []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tasks:    make(map[string]*models.Task),
		events:   make(map[string]*models.Event),
		contacts: make(map[string]*models.Contact),
	}
}

func (f *fakeStore) CreateTask(_ context.Context, task models.Task) (models.Task, error) {
	f.tasks[task.ID] = &task
	f.taskIDs = append(f.taskIDs, task.ID)
	return task, nil
}

func (f *fakeStore) GetTasks(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	result := make([]models.Task, 0)
	for _, id := range f.taskIDs {
		task, ok := f.tasks[id]
		if !ok {
			continue
		}
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		result = append(result, *task)
	}
	return result, nil
}

func (f *fakeStore) GetTask(_ context.Context, id string) (models.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return models.Task{}, store.ErrTaskNotFound
	}
	return *task, nil
}

func (f *fakeStore) UpdateTask(_ context.Context, id string, task models.Task) (models.Task, error) {
	if _, ok := f.tasks[id]; !ok {
		return models.Task{}, store.ErrTaskNotFound
	}
	task.ID = id
	f.tasks[id] = &task
	return task, nil
}

func (f *fakeStore) DeleteTask(_ context.Context, id string) (models.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return models.Task{}, store.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return *task, nil
}

func (f *fakeStore) CreateEvent(_ context.Context, event models.Event) (models.Event, error) {
	f.events[event.ID] = &event
	f.eventIDs = append(f.eventIDs, event.ID)
	return event, nil
}

func (f *fakeStore) GetEvents(_ context.Context, filter models.EventFilter) ([]models.Event, error) {
	result := make([]models.Event, 0)
	for _, id := range f.eventIDs {
		event, ok := f.events[id]
		if !ok {
			continue
		}
		if filter.EventType != "" && event.EventType != filter.EventType {
			continue
		}
		if filter.CalendarName != "" && event.CalendarName != filter.CalendarName {
			continue
		}
		// Bounds are exclusive, like the real store's filter.
		if filter.From != nil && !event.StartTime.After(*filter.From) {
			continue
		}
		if filter.To != nil && !event.StartTime.Before(*filter.To) {
			continue
		}
		result = append(result, *event)
	}
	return result, nil
}

func (f *fakeStore) EventsOnDay(_ context.Context, dayStart, dayEnd time.Time) ([]models.Event, error) {
	result := make([]models.Event, 0)
	for _, id := range f.eventIDs {
		event, ok := f.events[id]
		if !ok {
			continue
		}
		if event.StartTime.Before(dayStart) || !event.StartTime.Before(dayEnd) {
			continue
		}
		result = append(result, *event)
	}
	return result, nil
}

func (f *fakeStore) GetEvent(_ context.Context, id string) (models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return models.Event{}, store.ErrEventNotFound
	}
	return *event, nil
}

func (f *fakeStore) UpdateEvent(_ context.Context, id string, event models.Event) (models.Event, error) {
	if _, ok := f.events[id]; !ok {
		return models.Event{}, store.ErrEventNotFound
	}
	event.ID = id
	f.events[id] = &event
	return event, nil
}

func (f *fakeStore) DeleteEvent(_ context.Context, id string) (models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return models.Event{}, store.ErrEventNotFound
	}
	delete(f.events, id)
	return *event, nil
}

func (f *fakeStore) CreateContact(_ context.Context, contact models.Contact) (models.Contact, error) {
	f.contacts[contact.ID] = &contact
	f.contactIDs = append(f.contactIDs, contact.ID)
	return contact, nil
}

func (f *fakeStore) GetContacts(_ context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	result := make([]models.Contact, 0)
	for _, id := range f.contactIDs {
		contact, ok := f.contacts[id]
		if !ok {
			continue
		}
		if filter.Company != "" && contact.Company != filter.Company {
			continue
		}
		if filter.Search != "" && !contactMatches(*contact, filter.Search) {
			continue
		}
		if filter.Tag != "" && !hasTag(contact.Tags, filter.Tag) {
			continue
		}
		result = append(result, *contact)
	}
	return result, nil
}

func contactMatches(contact models.Contact, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{contact.Name, contact.Email, contact.Company} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func hasTag(tags models.StringList, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (f *fakeStore) GetContact(_ context.Context, id string) (models.Contact, error) {
	contact, ok := f.contacts[id]
	if !ok {
		return models.Contact{}, store.ErrContactNotFound
	}
	return *contact, nil
}

func (f *fakeStore) UpdateContact(_ context.Context, id string, contact models.Contact) (models.Contact, error) {
	if _, ok := f.contacts[id]; !ok {
		return models.Contact{}, store.ErrContactNotFound
	}
	contact.ID = id
	f.contacts[id] = &contact
	return contact, nil
}

func (f *fakeStore) DeleteContact(_ context.Context, id string) (models.Contact, error) {
	contact, ok := f.contacts[id]
	if !ok {
		return models.Contact{}, store.ErrContactNotFound
	}
	delete(f.contacts, id)
	return *contact, nil
}

func (f *fakeStore) Stats(_ context.Context, dayStart, dayEnd time.Time) (models.Stats, error) {
	stats := models.Stats{
		TotalTasks:    len(f.tasks),
		TotalEvents:   len(f.events),
		TotalContacts: len(f.contacts),
	}
	for _, task := range f.tasks {
		if task.Status == models.StatusPending {
			stats.PendingTasks++
		}
	}
	for _, event := range f.events {
		if !event.StartTime.Before(dayStart) && event.StartTime.Before(dayEnd) {
			stats.TodayEvents++
		}
	}
	return stats, nil
}

func (f *fakeStore) Ping(context.Context) error { return nil }
