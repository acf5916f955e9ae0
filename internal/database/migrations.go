package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is applied on every start. Every statement must be idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS grades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER,
		subject TEXT NOT NULL,
		grade REAL NOT NULL,
		FOREIGN KEY (student_id) REFERENCES students(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_students_name ON students(name)`,
	`CREATE INDEX IF NOT EXISTS idx_grades_student_subject ON grades(student_id, subject)`,
}

// EnsureSchema creates the students and grades tables if they do not exist.
// Safe to call any number of times.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		return nil
	})
}
