package models

// Bounds for a grade value, inclusive on both ends
const (
	MinGrade = 0.0
	MaxGrade = 100.0
)

// GradeInRange reports whether v is a storable grade value.
// NaN is never in range.
func GradeInRange(v float64) bool {
	return v >= MinGrade && v <= MaxGrade
}
