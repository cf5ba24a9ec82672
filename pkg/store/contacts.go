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

func (s *Store) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	defer observe("CreateContact", time.Now())
	var createdContact models.Contact
	query := `
INSERT INTO contacts (id, name, email, phone, address, company, birthday, notes, tags, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING *;`
	var err error
	for i := 0; i < retries; i++ {
		if err = s.db.QueryRowxContext(ctx, query,
			contact.ID, contact.Name, contact.Email, contact.Phone, contact.Address,
			contact.Company, contact.Birthday, contact.Notes, contact.Tags,
			contact.CreatedAt, contact.UpdatedAt).StructScan(&createdContact); err != nil {
			continue
		}
		return createdContact, nil
	}
	metrics.DBErrCount.WithLabelValues("CreateContact").Inc()
	return models.Contact{}, fmt.Errorf("err creating contact: %w", err)
}

func (s *Store) GetContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	defer observe("GetContacts", time.Now())
	query := `SELECT * FROM contacts WHERE 1=1`
	args := make([]interface{}, 0, 4)
	if filter.Company != "" {
		query += ` AND company = ?`
		args = append(args, filter.Company)
	}
	if filter.Search != "" {
		query += ` AND (name LIKE ? OR email LIKE ? OR company LIKE ?)`
		pattern := `%` + filter.Search + `%`
		args = append(args, pattern, pattern, pattern)
	}
	if filter.Tag != "" {
		query += ` AND tags LIKE ?`
		args = append(args, `%"`+filter.Tag+`"%`)
	}
	query += ` ORDER BY name, id`
	contacts := make([]models.Contact, 0)
	var err error
	for i := 0; i < retries; i++ {
		if err = s.db.SelectContext(ctx, &contacts, query, args...); err != nil {
			continue
		}
		return contacts, nil
	}
	metrics.DBErrCount.WithLabelValues("GetContacts").Inc()
	return nil, fmt.Errorf("err getting contacts: %w", err)
}

func (s *Store) GetContact(ctx context.Context, id string) (models.Contact, error) {
	defer observe("GetContact", time.Now())
	var contact models.Contact
	query := `
SELECT * FROM contacts
WHERE id = ?;`
	var err error
	for i := 0; i < retries; i++ {
		err = s.db.GetContext(ctx, &contact, query, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Contact{}, ErrContactNotFound
		case err != nil:
			continue
		}
		return contact, nil
	}
	metrics.DBErrCount.WithLabelValues("GetContact").Inc()
	return models.Contact{}, fmt.Errorf("err getting contact %s: %w", id, err)
}

func (s *Store) UpdateContact(ctx context.Context, id string, contact models.Contact) (models.Contact, error) {
	defer observe("UpdateContact", time.Now())
	var updatedContact models.Contact
	query := `
UPDATE contacts
SET name = ?,
    email = ?,
    phone = ?,
    address = ?,
    company = ?,
    birthday = ?,
    notes = ?,
    tags = ?,
    updated_at = ?
WHERE id = ?
RETURNING *;`
	var err error
	for i := 0; i < retries; i++ {
		err = s.db.GetContext(ctx, &updatedContact, query,
			contact.Name, contact.Email, contact.Phone, contact.Address,
			contact.Company, contact.Birthday, contact.Notes, contact.Tags,
			contact.UpdatedAt, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Contact{}, ErrContactNotFound
		case err != nil:
			continue
		}
		return updatedContact, nil
	}
	metrics.DBErrCount.WithLabelValues("UpdateContact").Inc()
	return models.Contact{}, fmt.Errorf("err updating contact %s: %w", id, err)
}

func (s *Store) DeleteContact(ctx context.Context, id string) (models.Contact, error) {
	defer observe("DeleteContact", time.Now())
	var deletedContact models.Contact
	query := `
DELETE FROM contacts
WHERE id = ?
RETURNING *;`
	var err error
	for i := 0; i < retries; i++ {
		err = s.db.GetContext(ctx, &deletedContact, query, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Contact{}, ErrContactNotFound
		case err != nil:
			continue
		}
		return deletedContact, nil
	}
	metrics.DBErrCount.WithLabelValues("DeleteContact").Inc()
	return models.Contact{}, fmt.Errorf("err deleting contact %s: %w", id, err)
}
