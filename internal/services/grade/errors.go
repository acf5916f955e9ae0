package grade

import (
	"errors"

	"github.com/thenoetrevino/gradebook/internal/models"
)

// Grade service errors. The input errors alias the shared domain errors so
// errors.Is matches no matter which layer rejected the value.
var (
	// Validation errors
	ErrEmptyStudentName = models.ErrEmptyStudentName
	ErrEmptySubject     = models.ErrEmptySubject
	ErrInvalidGrade     = models.ErrInvalidGrade
	ErrGradeOutOfRange  = models.ErrGradeOutOfRange
	ErrInvalidGradeID   = errors.New("invalid grade ID")
	ErrInvalidStudentID = errors.New("invalid student ID")

	// Business logic errors
	ErrGradeNotFound = models.ErrGradeNotFound
)
