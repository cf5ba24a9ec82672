package models

import "time"

const (
	StatusPending    = `pending`
	StatusInProgress = `in_progress`
	StatusCompleted  = `completed`
	StatusCancelled  = `cancelled`
)

const (
	PriorityLow    = `low`
	PriorityMedium = `medium`
	PriorityHigh   = `high`
	PriorityUrgent = `urgent`
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type TaskRequest struct {
	Title       *string     `json:"title" db:"title"`
	Description *string     `json:"description" db:"description"`
	Status      *string     `json:"status" db:"status"`
	Priority    *string     `json:"priority" db:"priority"`
	DueDate     *time.Time  `json:"due_date" db:"due_date"`
	Tags        *StringList `json:"tags" db:"tags"`
	AssignedTo  *string     `json:"assigned_to" db:"assigned_to"`
}

type Task struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Status      string     `json:"status" db:"status"`
	Priority    string     `json:"priority" db:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Tags        StringList `json:"tags" db:"tags"`
	AssignedTo  string     `json:"assigned_to,omitempty" db:"assigned_to"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// TaskFilter narrows task listings, clauses combined with AND.
type TaskFilter struct {
	Status   string
	Priority string
}
