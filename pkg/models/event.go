package models

import "time"

const (
	EventMeeting  = `meeting`
	EventTask     = `task`
	EventReminder = `reminder`
	EventPersonal = `personal`
	EventWork     = `work`
)

const (
	DefaultCalendar        = `Personal`
	DefaultReminderMinutes = 15
)

func ValidEventType(t string) bool {
	switch t {
	case EventMeeting, EventTask, EventReminder, EventPersonal, EventWork:
		return true
	}
	return false
}

type EventRequest struct {
	Title           *string     `json:"title" db:"title"`
	Description     *string     `json:"description" db:"description"`
	StartTime       *time.Time  `json:"start_time" db:"start_time"`
	EndTime         *time.Time  `json:"end_time" db:"end_time"`
	Location        *string     `json:"location" db:"location"`
	EventType       *string     `json:"event_type" db:"event_type"`
	Attendees       *StringList `json:"attendees" db:"attendees"`
	ReminderMinutes *int        `json:"reminder_minutes" db:"reminder_minutes"`
	CalendarName    *string     `json:"calendar_name" db:"calendar_name"`
	AllDay          *bool       `json:"all_day" db:"all_day"`
}

type Event struct {
	ID              string     `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	StartTime       time.Time  `json:"start_time" db:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty" db:"end_time"`
	Location        string     `json:"location,omitempty" db:"location"`
	EventType       string     `json:"event_type" db:"event_type"`
	Attendees       StringList `json:"attendees" db:"attendees"`
	ReminderMinutes int        `json:"reminder_minutes" db:"reminder_minutes"`
	CalendarName    string     `json:"calendar_name" db:"calendar_name"`
	AllDay          bool       `json:"all_day" db:"all_day"`
	Reminded        bool       `json:"-" db:"reminded"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// EventFilter narrows event listings, clauses combined with AND.
// From and To bound start_time (exclusive).
type EventFilter struct {
	EventType    string
	CalendarName string
	From         *time.Time
	To           *time.Time
}
