package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/gradebook/internal/models"
)

// FindOrCreateStudent returns the ID of the student with exactly this name,
// inserting a new student when none exists.
func (s *Store) FindOrCreateStudent(ctx context.Context, name string) (int, error) {
	if isBlank(name) {
		return 0, models.ErrEmptyStudentName
	}

	var id int
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &id, `SELECT id FROM students WHERE name = ? ORDER BY id LIMIT 1`, name)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to look up student '%s': %w", name, err)
		}

		result, err := tx.ExecContext(ctx, `INSERT INTO students (name) VALUES (?)`, name)
		if err != nil {
			return fmt.Errorf("failed to insert student '%s': %w", name, err)
		}

		newID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get student ID after insert: %w", err)
		}
		id = int(newID)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetStudentByID retrieves a student by its ID
func (s *Store) GetStudentByID(ctx context.Context, id int) (*models.Student, error) {
	student := &models.Student{}
	err := withConn(ctx, s.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, student, `SELECT id, name FROM students WHERE id = ?`, id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get student %d: %w", id, err)
	}
	return student, nil
}

// CountStudents returns the number of student records
func (s *Store) CountStudents(ctx context.Context) (int, error) {
	var count int
	err := withConn(ctx, s.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM students`)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}
