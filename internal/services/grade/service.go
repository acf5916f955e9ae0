// Package grade holds the business rules for recording and reporting grades
package grade

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/gradebook/internal/models"
)

// Service defines all grade-related business operations
type Service interface {
	// Read operations
	ListGrades(ctx context.Context) ([]models.GradeEntry, error)
	AverageForSubject(ctx context.Context, subject string) (*float64, error)
	FindGrade(ctx context.Context, studentName, subject string) (*models.Grade, error)
	Report(ctx context.Context) ([]models.ReportEntry, error)
	Stats(ctx context.Context) (*models.Stats, error)

	// Write operations
	ResolveStudent(ctx context.Context, name string) (int, error)
	RecordGrade(ctx context.Context, req RecordGradeRequest) (*models.Grade, error)
	AddGrade(ctx context.Context, req AddGradeRequest) (*models.Grade, error)
	UpdateGrade(ctx context.Context, req UpdateGradeRequest) error
}

// AddGradeRequest records a grade for a student identified by name.
// The student is created on first use.
type AddGradeRequest struct {
	StudentName string  `validate:"required"`
	Subject     string  `validate:"required"`
	Value       float64 `validate:"gte=0,lte=100"`
}

// RecordGradeRequest records a grade for an already resolved student
type RecordGradeRequest struct {
	StudentID int     `validate:"gt=0"`
	Subject   string  `validate:"required"`
	Value     float64 `validate:"gte=0,lte=100"`
}

// UpdateGradeRequest replaces the value of an existing grade
type UpdateGradeRequest struct {
	GradeID int     `validate:"gt=0"`
	Value   float64 `validate:"gte=0,lte=100"`
}

// repository defines the data access methods needed by the grade service
// This interface is private to the service layer
type repository interface {
	FindOrCreateStudent(ctx context.Context, name string) (int, error)
	InsertGrade(ctx context.Context, studentID int, subject string, value float64) (int, error)
	ListAllGrades(ctx context.Context) ([]models.GradeEntry, error)
	AverageForSubject(ctx context.Context, subject string) (*float64, error)
	FindGrade(ctx context.Context, studentName, subject string) (*models.Grade, error)
	UpdateGrade(ctx context.Context, gradeID int, value float64) error
	ReportByStudentAndSubject(ctx context.Context) ([]models.ReportEntry, error)
	CountStudents(ctx context.Context) (int, error)
	CountGrades(ctx context.Context) (int, error)
}

// service implements Service interface with private repository
type service struct {
	repo     repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a new grade service. A nil logger falls back to slog.Default.
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// ListGrades returns every recorded grade
func (s *service) ListGrades(ctx context.Context) ([]models.GradeEntry, error) {
	return s.repo.ListAllGrades(ctx)
}

// AverageForSubject returns nil when the subject has no grades
func (s *service) AverageForSubject(ctx context.Context, subject string) (*float64, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, ErrEmptySubject
	}
	return s.repo.AverageForSubject(ctx, subject)
}

// FindGrade looks up a grade for editing.
// Blank names and subjects are passed through and simply match nothing.
func (s *service) FindGrade(ctx context.Context, studentName, subject string) (*models.Grade, error) {
	grade, err := s.repo.FindGrade(ctx, studentName, subject)
	if err != nil {
		return nil, err
	}
	if grade == nil {
		return nil, ErrGradeNotFound
	}
	return grade, nil
}

// Report returns per student, per subject averages
func (s *service) Report(ctx context.Context) ([]models.ReportEntry, error) {
	return s.repo.ReportByStudentAndSubject(ctx)
}

// Stats counts students and grades
func (s *service) Stats(ctx context.Context) (*models.Stats, error) {
	students, err := s.repo.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	grades, err := s.repo.CountGrades(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Stats{Students: students, Grades: grades}, nil
}

// ResolveStudent returns the ID for name, creating the student if needed
func (s *service) ResolveStudent(ctx context.Context, name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmptyStudentName
	}

	id, err := s.repo.FindOrCreateStudent(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve student: %w", err)
	}
	return id, nil
}

// RecordGrade stores a grade for a resolved student
func (s *service) RecordGrade(ctx context.Context, req RecordGradeRequest) (*models.Grade, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	id, err := s.repo.InsertGrade(ctx, req.StudentID, req.Subject, req.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to record grade: %w", err)
	}

	s.logger.Info("grade recorded", "grade_id", id, "student_id", req.StudentID, "subject", req.Subject)

	return &models.Grade{
		ID:        id,
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Value:     req.Value,
	}, nil
}

// AddGrade validates every field before touching the store, then resolves
// the student and records the grade.
func (s *service) AddGrade(ctx context.Context, req AddGradeRequest) (*models.Grade, error) {
	req.StudentName = strings.TrimSpace(req.StudentName)
	req.Subject = strings.TrimSpace(req.Subject)
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}

	studentID, err := s.ResolveStudent(ctx, req.StudentName)
	if err != nil {
		return nil, err
	}

	return s.RecordGrade(ctx, RecordGradeRequest{
		StudentID: studentID,
		Subject:   req.Subject,
		Value:     req.Value,
	})
}

// UpdateGrade overwrites the value of an existing grade
func (s *service) UpdateGrade(ctx context.Context, req UpdateGradeRequest) error {
	if err := s.validateStruct(req); err != nil {
		return err
	}

	if err := s.repo.UpdateGrade(ctx, req.GradeID, req.Value); err != nil {
		if errors.Is(err, ErrGradeNotFound) {
			return err
		}
		return fmt.Errorf("failed to update grade: %w", err)
	}

	s.logger.Info("grade updated", "grade_id", req.GradeID)
	return nil
}

// validateStruct runs struct tag validation and maps the first failing field
// to its domain error
func (s *service) validateStruct(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	switch fieldErrs[0].Field() {
	case "StudentName":
		return ErrEmptyStudentName
	case "Subject":
		return ErrEmptySubject
	case "Value":
		return ErrGradeOutOfRange
	case "GradeID":
		return ErrInvalidGradeID
	case "StudentID":
		return ErrInvalidStudentID
	default:
		return fmt.Errorf("invalid %s: %w", fieldErrs[0].Field(), err)
	}
}
