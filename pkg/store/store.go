// Package store persists organizer records in a single sqlite file.
// Every operation is one statement; list-valued columns go through
// models.StringList so tags and attendees round-trip as JSON arrays.
package store

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"

	"organizer/pkg/metrics"
	"organizer/pkg/models"
)

//go:embed migrations
var migrations embed.FS

const retries = 3

var (
	ErrTaskNotFound    = fmt.Errorf("task not found")
	ErrEventNotFound   = fmt.Errorf("event not found")
	ErrContactNotFound = fmt.Errorf("contact not found")
)

type Store struct {
	log *logrus.Entry
	db  *sqlx.DB
}

// NewStore opens (or creates) the sqlite file at path. The caller is
// expected to have registered the "sqlite" driver (modernc.org/sqlite).
func NewStore(ctx context.Context, log *logrus.Logger, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_time_format=sqlite&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// The file store serializes writers; a single connection avoids
	// SQLITE_BUSY between pool members.
	db.SetMaxOpenConns(1)
	return &Store{
		log: log.WithField("component", "store"),
		db:  db,
	}, nil
}

func (s *Store) Migrate(direction migrate.MigrationDirection) error {
	assetDir := func() func(string) ([]string, error) {
		return func(path string) ([]string, error) {
			dirEntry, er := migrations.ReadDir(path)
			if er != nil {
				return nil, er
			}
			entries := make([]string, 0)
			for _, e := range dirEntry {
				entries = append(entries, e.Name())
			}

			return entries, nil
		}
	}()
	asset := migrate.AssetMigrationSource{
		Asset:    migrations.ReadFile,
		AssetDir: assetDir,
		Dir:      "migrations",
	}
	_, err := migrate.Exec(s.db.DB, "sqlite3", asset, direction)
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Stats(ctx context.Context, dayStart, dayEnd time.Time) (models.Stats, error) {
	defer observe("Stats", time.Now())
	var stats models.Stats
	counts := []struct {
		dst   *int
		query string
		args  []interface{}
	}{
		{&stats.TotalTasks, `SELECT count(*) FROM tasks`, nil},
		{&stats.TotalEvents, `SELECT count(*) FROM calendar_events`, nil},
		{&stats.TotalContacts, `SELECT count(*) FROM contacts`, nil},
		{&stats.PendingTasks, `SELECT count(*) FROM tasks WHERE status = ?`, []interface{}{models.StatusPending}},
		{&stats.TodayEvents, `SELECT count(*) FROM calendar_events WHERE start_time >= ? AND start_time < ?`, []interface{}{dayStart, dayEnd}},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dst, c.query, c.args...); err != nil {
			metrics.DBErrCount.WithLabelValues("Stats").Inc()
			return models.Stats{}, fmt.Errorf("err counting records: %w", err)
		}
	}
	return stats, nil
}

func (s *Store) ResetTables(ctx context.Context, tables []string) error {
	for _, table := range tables {
		switch table {
		case "tasks", "calendar_events", "contacts":
		default:
			return fmt.Errorf("unknown table %q", table)
		}
		if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}
	return nil
}

func observe(method string, start time.Time) {
	metrics.DBDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
