package database

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

// Store owns the students and grades tables.
// Every method acquires its own connection and releases it before returning,
// so no lock is held between calls.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open database handle
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying handle
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}
