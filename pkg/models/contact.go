package models

import "time"

type ContactRequest struct {
	Name     *string     `json:"name" db:"name"`
	Email    *string     `json:"email" db:"email"`
	Phone    *string     `json:"phone" db:"phone"`
	Address  *string     `json:"address" db:"address"`
	Company  *string     `json:"company" db:"company"`
	Birthday *string     `json:"birthday" db:"birthday"`
	Notes    *string     `json:"notes" db:"notes"`
	Tags     *StringList `json:"tags" db:"tags"`
}

type Contact struct {
	ID        string     `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email,omitempty" db:"email"`
	Phone     string     `json:"phone,omitempty" db:"phone"`
	Address   string     `json:"address,omitempty" db:"address"`
	Company   string     `json:"company,omitempty" db:"company"`
	Birthday  string     `json:"birthday,omitempty" db:"birthday"`
	Notes     string     `json:"notes,omitempty" db:"notes"`
	Tags      StringList `json:"tags" db:"tags"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// ContactFilter narrows contact listings, clauses combined with AND.
// Search matches name, email or company as a substring.
type ContactFilter struct {
	Company string
	Search  string
	Tag     string
}
