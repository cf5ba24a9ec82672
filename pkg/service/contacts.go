package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"organizer/pkg/models"
)

func (s *Organizer) CreateContact(ctx context.Context, req models.ContactRequest) (models.Contact, error) {
	now := s.now()
	contact, err := materializeContact(req, uuid.NewString(), now, now)
	if err != nil {
		return models.Contact{}, err
	}
	createdContact, err := s.store.CreateContact(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("err creating contact: %w", err)
	}
	s.notify(ctx, fmt.Sprintf("contact created: %s", createdContact.Name))
	return createdContact, nil
}

func (s *Organizer) GetContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	contacts, err := s.store.GetContacts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("err getting contacts from store: %w", err)
	}
	return contacts, nil
}

func (s *Organizer) GetContact(ctx context.Context, id string) (models.Contact, error) {
	return s.store.GetContact(ctx, id)
}

func (s *Organizer) UpdateContact(ctx context.Context, id string, req models.ContactRequest) (models.Contact, error) {
	existing, err := s.store.GetContact(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}
	contact, err := materializeContact(req, id, existing.CreatedAt, s.now())
	if err != nil {
		return models.Contact{}, err
	}
	return s.store.UpdateContact(ctx, id, contact)
}

func (s *Organizer) DeleteContact(ctx context.Context, id string) error {
	if _, err := s.store.DeleteContact(ctx, id); err != nil {
		return err
	}
	return nil
}

func materializeContact(req models.ContactRequest, id string, createdAt, now time.Time) (models.Contact, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return models.Contact{}, models.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if req.Email != nil && *req.Email != "" && !strings.Contains(*req.Email, "@") {
		return models.Contact{}, models.ValidationError{Field: "email", Reason: "malformed address"}
	}
	return models.Contact{
		ID:        id,
		Name:      strings.TrimSpace(*req.Name),
		Email:     strOrDefault(req.Email, ""),
		Phone:     strOrDefault(req.Phone, ""),
		Address:   strOrDefault(req.Address, ""),
		Company:   strOrDefault(req.Company, ""),
		Birthday:  strOrDefault(req.Birthday, ""),
		Notes:     strOrDefault(req.Notes, ""),
		Tags:      tagsOrEmpty(req.Tags),
		CreatedAt: createdAt,
		UpdatedAt: now,
	}, nil
}
