package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"organizer/pkg/models"
)

func (s *Server) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	createdTask, err := s.app.CreateTask(ctx, req)
	if err != nil {
		s.writeError(w, err, "creating task")
		return
	}
	s.writeResponse(w, http.StatusCreated, createdTask)
}

func (s *Server) getTasksHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := models.TaskFilter{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}
	tasks, err := s.app.GetTasks(ctx, filter)
	if err != nil {
		s.writeError(w, err, "getting tasks")
		return
	}
	s.writeResponse(w, http.StatusOK, tasks)
}

func (s *Server) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	task, err := s.app.GetTask(ctx, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err, "getting task")
		return
	}
	s.writeResponse(w, http.StatusOK, task)
}

func (s *Server) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	updatedTask, err := s.app.UpdateTask(ctx, chi.URLParam(r, "id"), req)
	if err != nil {
		s.writeError(w, err, "updating task")
		return
	}
	s.writeResponse(w, http.StatusOK, updatedTask)
}

func (s *Server) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.app.DeleteTask(ctx, chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err, "deleting task")
		return
	}
	s.writeResponse(w, http.StatusNoContent, nil)
}
