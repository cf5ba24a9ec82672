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

func (s *Store) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	defer observe("CreateTask", time.Now())
	var createdTask models.Task
	query := `
INSERT INTO tasks (id, title, description, status, priority, due_date, completed_at, tags, assigned_to, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING *;`
	var err error
	for i := 0; i < retries; i++ {
		if err = s.db.QueryRowxContext(ctx, query,
			task.ID, task.Title, task.Description, task.Status, task.Priority,
			task.DueDate, task.CompletedAt, task.Tags, task.AssignedTo,
			task.CreatedAt, task.UpdatedAt).StructScan(&createdTask); err != nil {
			continue
		}
		return createdTask, nil
	}
	metrics.DBErrCount.WithLabelValues("CreateTask").Inc()
	return models.Task{}, fmt.Errorf("err creating task: %w", err)
}

func (s *Store) GetTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	defer observe("GetTasks", time.Now())
	query := `SELECT * FROM tasks WHERE 1=1`
	args := make([]interface{}, 0, 2)
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.Priority != "" {
		query += ` AND priority = ?`
		args = append(args, filter.Priority)
	}
	query += ` ORDER BY created_at, id`
	tasks := make([]models.Task, 0)
	var err error
	for i := 0; i < retries; i++ {
		if err = s.db.SelectContext(ctx, &tasks, query, args...); err != nil {
			continue
		}
		return tasks, nil
	}
	metrics.DBErrCount.WithLabelValues("GetTasks").Inc()
	return nil, fmt.Errorf("err getting tasks: %w", err)
}

func (s *Store) GetTask(ctx context.Context, id string) (models.Task, error) {
	defer observe("GetTask", time.Now())
	var task models.Task
	query := `
SELECT * FROM tasks
WHERE id = ?;`
	var err error
	for i := 0; i < retries; i++ {
		err = s.db.GetContext(ctx, &task, query, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Task{}, ErrTaskNotFound
		case err != nil:
			continue
		}
		return task, nil
	}
	metrics.DBErrCount.WithLabelValues("GetTask").Inc()
	return models.Task{}, fmt.Errorf("err getting task %s: %w", id, err)
}

func (s *Store) UpdateTask(ctx context.Context, id string, task models.Task) (models.Task, error) {
	defer observe("UpdateTask", time.Now())
	var updatedTask models.Task
	query := `
UPDATE tasks
SET title = ?,
    description = ?,
    status = ?,
    priority = ?,
    due_date = ?,
    completed_at = ?,
    tags = ?,
    assigned_to = ?,
    updated_at = ?
WHERE id = ?
RETURNING *;`
	var err error
	for i := 0; i < retries; i++ {
		err = s.db.GetContext(ctx, &updatedTask, query,
			task.Title, task.Description, task.Status, task.Priority,
			task.DueDate, task.CompletedAt, task.Tags, task.AssignedTo,
			task.UpdatedAt, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Task{}, ErrTaskNotFound
		case err != nil:
			continue
		}
		return updatedTask, nil
	}
	metrics.DBErrCount.WithLabelValues("UpdateTask").Inc()
	return models.Task{}, fmt.Errorf("err updating task %s: %w", id, err)
}

func (s *Store) DeleteTask(ctx context.Context, id string) (models.Task, error) {
	defer observe("DeleteTask", time.Now())
	var deletedTask models.Task
	query := `
DELETE FROM tasks
WHERE id = ?
RETURNING *;`
	var err error
	for i := 0; i < retries; i++ {
		err = s.db.GetContext(ctx, &deletedTask, query, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Task{}, ErrTaskNotFound
		case err != nil:
			continue
		}
		return deletedTask, nil
	}
	metrics.DBErrCount.WithLabelValues("DeleteTask").Inc()
	return models.Task{}, fmt.Errorf("err deleting task %s: %w", id, err)
}
