// Package rest exposes the organizer over HTTP. Updates use PUT with
// full-record replacement semantics: the payload is validated and
// defaulted exactly like a creation payload.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"organizer/pkg/models"
)

type App interface {
	CreateTask(ctx context.Context, req models.TaskRequest) (models.Task, error)
	GetTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	UpdateTask(ctx context.Context, id string, req models.TaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	CreateEvent(ctx context.Context, req models.EventRequest) (models.Event, error)
	GetEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (models.Event, error)
	UpdateEvent(ctx context.Context, id string, req models.EventRequest) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	TodayEvents(ctx context.Context) ([]models.Event, error)

	CreateContact(ctx context.Context, req models.ContactRequest) (models.Contact, error)
	GetContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	UpdateContact(ctx context.Context, id string, req models.ContactRequest) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error

	TodaySummary(ctx context.Context) (models.Summary, error)
	Stats(ctx context.Context) (models.Stats, error)
	Health(ctx context.Context) error
}

type Server struct {
	log     *logrus.Entry
	app     App
	address string
	version string
	router  chi.Router
}

func NewServer(log *logrus.Logger, app App, address, version string) *Server {
	s := Server{
		log:     log.WithField("component", "rest"),
		app:     app,
		address: address,
		version: version,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/version", s.versionHandler)
	r.Get("/health", s.healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", s.createTaskHandler)
				r.Get("/", s.getTasksHandler)
				r.Get("/{id}", s.getTaskHandler)
				r.Put("/{id}", s.updateTaskHandler)
				r.Delete("/{id}", s.deleteTaskHandler)
			})
			r.Route("/calendar", func(r chi.Router) {
				r.Get("/today", s.todayEventsHandler)
				r.Route("/events", func(r chi.Router) {
					r.Post("/", s.createEventHandler)
					r.Get("/", s.getEventsHandler)
					r.Get("/{id}", s.getEventHandler)
					r.Put("/{id}", s.updateEventHandler)
					r.Delete("/{id}", s.deleteEventHandler)
				})
			})
			r.Route("/contacts", func(r chi.Router) {
				r.Post("/", s.createContactHandler)
				r.Get("/", s.getContactsHandler)
				r.Get("/{id}", s.getContactHandler)
				r.Put("/{id}", s.updateContactHandler)
				r.Delete("/{id}", s.deleteContactHandler)
			})
			r.Get("/summary/today", s.todaySummaryHandler)
			r.Get("/stats", s.statsHandler)
		})
	})
	s.router = r
	return &s
}

// Handler returns the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.address,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Warnf("err during shutdown: %v", err)
		}
	}()
	s.log.Infof("Starting server on %s", s.address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
