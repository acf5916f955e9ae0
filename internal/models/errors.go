package models

import "errors"

// Domain errors shared by the store, the grade service, and the session
var (
	// ErrEmptyStudentName indicates a blank student name where one is required
	ErrEmptyStudentName = errors.New("student name cannot be empty")

	// ErrEmptySubject indicates a blank subject where one is required
	ErrEmptySubject = errors.New("subject name cannot be empty")

	// ErrInvalidGrade indicates grade text that is not a number
	ErrInvalidGrade = errors.New("grade must be a number")

	// ErrGradeOutOfRange indicates a grade outside [0, 100]
	ErrGradeOutOfRange = errors.New("grade must be between 0 and 100")

	// ErrGradeNotFound indicates no grade matched a lookup
	ErrGradeNotFound = errors.New("grade not found")
)
