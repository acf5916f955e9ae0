package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/gradebook/internal/models"
)

// InsertGrade appends a grade row. Several grades for the same student and
// subject are kept as separate rows.
func (s *Store) InsertGrade(ctx context.Context, studentID int, subject string, value float64) (int, error) {
	if isBlank(subject) {
		return 0, models.ErrEmptySubject
	}
	if !models.GradeInRange(value) {
		return 0, models.ErrGradeOutOfRange
	}

	var id int
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO grades (student_id, subject, grade) VALUES (?, ?, ?)`,
			studentID, subject, value,
		)
		if err != nil {
			return fmt.Errorf("failed to insert grade for student %d in '%s': %w", studentID, subject, err)
		}

		newID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get grade ID after insert: %w", err)
		}
		id = int(newID)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetGradeByID retrieves a grade by its ID
func (s *Store) GetGradeByID(ctx context.Context, id int) (*models.Grade, error) {
	grade := &models.Grade{}
	err := withConn(ctx, s.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, grade,
			`SELECT id, student_id, subject, grade FROM grades WHERE id = ?`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrGradeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get grade %d: %w", id, err)
	}
	return grade, nil
}

// ListAllGrades returns every grade with its student's name, in insertion order
func (s *Store) ListAllGrades(ctx context.Context) ([]models.GradeEntry, error) {
	entries := make([]models.GradeEntry, 0)
	err := withConn(ctx, s.db, func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &entries, `
			SELECT s.name AS student_name, g.subject, g.grade
			FROM grades g
			JOIN students s ON g.student_id = s.id
			ORDER BY g.id
		`)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	return entries, nil
}

// AverageForSubject returns the mean grade for an exact, case-sensitive
// subject match. It returns nil when the subject has no grades.
func (s *Store) AverageForSubject(ctx context.Context, subject string) (*float64, error) {
	var avg sql.NullFloat64
	err := withConn(ctx, s.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &avg, `SELECT AVG(grade) FROM grades WHERE subject = ?`, subject)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to average grades for '%s': %w", subject, err)
	}

	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// FindGrade returns one grade recorded for the named student in subject, or
// nil when there is none. With duplicates the earliest recorded row wins.
func (s *Store) FindGrade(ctx context.Context, studentName, subject string) (*models.Grade, error) {
	grade := &models.Grade{}
	err := withConn(ctx, s.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, grade, `
			SELECT g.id, g.student_id, g.subject, g.grade
			FROM grades g
			JOIN students s ON g.student_id = s.id
			WHERE s.name = ? AND g.subject = ?
			ORDER BY g.id
			LIMIT 1
		`, studentName, subject)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find grade for '%s' in '%s': %w", studentName, subject, err)
	}
	return grade, nil
}

// UpdateGrade overwrites the value of an existing grade
func (s *Store) UpdateGrade(ctx context.Context, gradeID int, value float64) error {
	if !models.GradeInRange(value) {
		return models.ErrGradeOutOfRange
	}

	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `UPDATE grades SET grade = ? WHERE id = ?`, value, gradeID)
		if err != nil {
			return fmt.Errorf("failed to update grade %d: %w", gradeID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check update of grade %d: %w", gradeID, err)
		}
		if affected == 0 {
			return models.ErrGradeNotFound
		}
		return nil
	})
}

// ReportByStudentAndSubject averages grades per (student name, subject),
// sorted by student name then subject.
func (s *Store) ReportByStudentAndSubject(ctx context.Context) ([]models.ReportEntry, error) {
	entries := make([]models.ReportEntry, 0)
	err := withConn(ctx, s.db, func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &entries, `
			SELECT s.name AS student_name, g.subject, AVG(g.grade) AS average_grade
			FROM grades g
			JOIN students s ON g.student_id = s.id
			GROUP BY s.name, g.subject
			ORDER BY s.name, g.subject
		`)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build grade report: %w", err)
	}
	return entries, nil
}

// CountGrades returns the number of grade rows
func (s *Store) CountGrades(ctx context.Context) (int, error) {
	var count int
	err := withConn(ctx, s.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM grades`)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count grades: %w", err)
	}
	return count, nil
}
