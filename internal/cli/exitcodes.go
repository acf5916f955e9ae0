package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	gradeservice "github.com/thenoetrevino/gradebook/internal/services/grade"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested grade was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Blank names or subjects, non-numeric or out of range grades.
	ExitValidation = 5
)

// ErrUsage marks errors caused by how a command was invoked
var ErrUsage = errors.New("invalid usage")

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, gradeservice.ErrGradeNotFound):
		return ExitNotFound
	case errors.Is(err, gradeservice.ErrEmptyStudentName),
		errors.Is(err, gradeservice.ErrEmptySubject),
		errors.Is(err, gradeservice.ErrInvalidGrade),
		errors.Is(err, gradeservice.ErrGradeOutOfRange),
		errors.Is(err, gradeservice.ErrInvalidGradeID),
		errors.Is(err, gradeservice.ErrInvalidStudentID):
		return ExitValidation
	default:
		return ExitError
	}
}

// reportedError wraps an error that was already shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as already printed by an OutputFormatter
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}

// NoArgs rejects positional arguments as a usage error
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %q accepts no arguments, got %q", ErrUsage, cmd.CommandPath(), args)
	}
	return nil
}

// FlagError marks flag parsing failures as usage errors
func FlagError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
