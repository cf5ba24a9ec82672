package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"organizer/pkg/models"
)

func (s *Organizer) CreateTask(ctx context.Context, req models.TaskRequest) (models.Task, error) {
	now := s.now()
	task, err := materializeTask(req, uuid.NewString(), now, now)
	if err != nil {
		return models.Task{}, err
	}
	createdTask, err := s.store.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("err creating task: %w", err)
	}
	s.notify(ctx, fmt.Sprintf("task created: %s", createdTask.Title))
	return createdTask, nil
}

func (s *Organizer) GetTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, models.ValidationError{Field: "status", Reason: "unknown status"}
	}
	if filter.Priority != "" && !models.ValidPriority(filter.Priority) {
		return nil, models.ValidationError{Field: "priority", Reason: "unknown priority"}
	}
	tasks, err := s.store.GetTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("err getting tasks from store: %w", err)
	}
	return tasks, nil
}

func (s *Organizer) GetTask(ctx context.Context, id string) (models.Task, error) {
	return s.store.GetTask(ctx, id)
}

func (s *Organizer) UpdateTask(ctx context.Context, id string, req models.TaskRequest) (models.Task, error) {
	existing, err := s.store.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	task, err := materializeTask(req, id, existing.CreatedAt, s.now())
	if err != nil {
		return models.Task{}, err
	}
	// Keep the original completion time when the task stays completed.
	if task.Status == models.StatusCompleted && existing.Status == models.StatusCompleted {
		task.CompletedAt = existing.CompletedAt
	}
	return s.store.UpdateTask(ctx, id, task)
}

func (s *Organizer) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.store.DeleteTask(ctx, id); err != nil {
		return err
	}
	return nil
}

// materializeTask turns a request payload into a full record: required
// fields checked, optional fields defaulted, identifier and timestamps set.
func materializeTask(req models.TaskRequest, id string, createdAt, now time.Time) (models.Task, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return models.Task{}, models.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	status := strOrDefault(req.Status, models.StatusPending)
	if !models.ValidStatus(status) {
		return models.Task{}, models.ValidationError{Field: "status", Reason: "unknown status"}
	}
	priority := strOrDefault(req.Priority, models.PriorityMedium)
	if !models.ValidPriority(priority) {
		return models.Task{}, models.ValidationError{Field: "priority", Reason: "unknown priority"}
	}
	task := models.Task{
		ID:          id,
		Title:       strings.TrimSpace(*req.Title),
		Description: strOrDefault(req.Description, ""),
		Status:      status,
		Priority:    priority,
		Tags:        tagsOrEmpty(req.Tags),
		AssignedTo:  strOrDefault(req.AssignedTo, ""),
		CreatedAt:   createdAt,
		UpdatedAt:   now,
	}
	if req.DueDate != nil {
		due := req.DueDate.UTC()
		task.DueDate = &due
	}
	if status == models.StatusCompleted {
		completed := now
		task.CompletedAt = &completed
	}
	return task, nil
}
