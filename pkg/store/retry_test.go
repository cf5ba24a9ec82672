package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Store{
		log: logrus.New().WithField("component", "store"),
		db:  sqlx.NewDb(db, "sqlmock"),
	}, mock
}

func TestGetTaskRetriesOnStorageError(t *testing.T) {
	s, mock := newMockStore(t)
	boom := fmt.Errorf("disk I/O error")
	for i := 0; i < retries; i++ {
		mock.ExpectQuery(`SELECT \* FROM tasks`).WillReturnError(boom)
	}

	_, err := s.GetTask(context.Background(), "t1")
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "err getting task t1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskNoRowsIsNotRetried(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT \* FROM tasks`).WillReturnError(sql.ErrNoRows)

	_, err := s.GetTask(context.Background(), "t1")
	require.ErrorIs(t, err, ErrTaskNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskRecoversAfterTransientError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT \* FROM tasks`).WillReturnError(fmt.Errorf("database is locked"))
	rows := sqlmock.NewRows([]string{"id", "title", "description", "status", "priority", "tags", "assigned_to"}).
		AddRow("t1", "Buy milk", "", "pending", "high", `[]`, "")
	mock.ExpectQuery(`SELECT \* FROM tasks`).WillReturnRows(rows)

	task, err := s.GetTask(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, "t1", task.ID)
	require.Equal(t, "high", task.Priority)
	require.NoError(t, mock.ExpectationsWereMet())
}
