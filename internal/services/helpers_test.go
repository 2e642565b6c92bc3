package services

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

type sqlmockDB struct {
	*sql.DB
	mock sqlmock.Sqlmock
}

func newSQLMock(t *testing.T) *sqlmockDB {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return &sqlmockDB{DB: db, mock: mock}
}
