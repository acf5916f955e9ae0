package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	gradeservice "github.com/thenoetrevino/gradebook/internal/services/grade"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", fmt.Errorf("%w: bad flag", ErrUsage), ExitUsage},
		{"not found", gradeservice.ErrGradeNotFound, ExitNotFound},
		{"empty name", gradeservice.ErrEmptyStudentName, ExitValidation},
		{"empty subject", gradeservice.ErrEmptySubject, ExitValidation},
		{"non-numeric", gradeservice.ErrInvalidGrade, ExitValidation},
		{"out of range", fmt.Errorf("wrapped: %w", gradeservice.ErrGradeOutOfRange), ExitValidation},
		{"reported validation", Reported(gradeservice.ErrEmptySubject), ExitValidation},
		{"other", errors.New("disk full"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestReported(t *testing.T) {
	assert.Nil(t, Reported(nil))

	err := Reported(gradeservice.ErrGradeNotFound)
	assert.True(t, IsReported(err))
	assert.True(t, errors.Is(err, gradeservice.ErrGradeNotFound))
	assert.Equal(t, "grade not found", err.Error())

	assert.False(t, IsReported(errors.New("plain")))
}

func TestNoArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}

	assert.NoError(t, NoArgs(cmd, nil))

	err := NoArgs(cmd, []string{"extra"})
	assert.True(t, errors.Is(err, ErrUsage))
}
