package grade

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/thenoetrevino/gradebook/internal/models"
)

// ParseGrade parses operator input as a grade value.
// Text that is not a real number (NaN included) returns ErrInvalidGrade.
// A number outside [0, 100] returns the parsed value with ErrGradeOutOfRange.
func ParseGrade(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrInvalidGrade
	}
	if math.IsNaN(value) {
		return 0, ErrInvalidGrade
	}
	if !models.GradeInRange(value) {
		return value, ErrGradeOutOfRange
	}
	return value, nil
}
