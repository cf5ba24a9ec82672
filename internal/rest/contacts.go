package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"organizer/pkg/models"
)

func (s *Server) createContactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	createdContact, err := s.app.CreateContact(ctx, req)
	if err != nil {
		s.writeError(w, err, "creating contact")
		return
	}
	s.writeResponse(w, http.StatusCreated, createdContact)
}

func (s *Server) getContactsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := models.ContactFilter{
		Company: r.URL.Query().Get("company"),
		Search:  r.URL.Query().Get("search"),
		Tag:     r.URL.Query().Get("tag"),
	}
	contacts, err := s.app.GetContacts(ctx, filter)
	if err != nil {
		s.writeError(w, err, "getting contacts")
		return
	}
	s.writeResponse(w, http.StatusOK, contacts)
}

func (s *Server) getContactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contact, err := s.app.GetContact(ctx, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err, "getting contact")
		return
	}
	s.writeResponse(w, http.StatusOK, contact)
}

func (s *Server) updateContactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	updatedContact, err := s.app.UpdateContact(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeError(w, err, "updating contact")
		return
	}
	s.writeResponse(w, http.StatusOK, updatedContact)
}

func (s *Server) deleteContactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.app.DeleteContact(ctx, chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err, "deleting contact")
		return
	}
	s.writeResponse(w, http.StatusNoContent, nil)
}
