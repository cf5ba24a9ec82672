package models

import "time"

// Summary is the day digest served by /summary/today and sent by the
// daily review notification.
type Summary struct {
	Date         string  `json:"date"`
	EventCount   int     `json:"event_count"`
	Events       []Event `json:"events"`
	PendingCount int     `json:"pending_count"`
	PendingTasks []Task  `json:"pending_tasks"`
}

type Stats struct {
	TotalTasks    int       `json:"total_tasks" db:"total_tasks"`
	TotalEvents   int       `json:"total_events" db:"total_events"`
	TotalContacts int       `json:"total_contacts" db:"total_contacts"`
	PendingTasks  int       `json:"pending_tasks" db:"pending_tasks"`
	TodayEvents   int       `json:"today_events" db:"today_events"`
	GeneratedAt   time.Time `json:"generated_at" db:"-"`
}
