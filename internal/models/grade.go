package models

import "fmt"

// Grade is one recorded (student, subject, value) fact
type Grade struct {
	ID        int     `db:"id" json:"id"`
	StudentID int     `db:"student_id" json:"student_id"`
	Subject   string  `db:"subject" json:"subject"`
	Value     float64 `db:"grade" json:"grade"`
}

// GetID returns the grade ID
func (g *Grade) GetID() int {
	return g.ID
}

// GradeEntry is a grade joined with the name of the student who owns it.
// Used by the list view.
type GradeEntry struct {
	StudentName string  `db:"student_name" json:"student_name"`
	Subject     string  `db:"subject" json:"subject"`
	Value       float64 `db:"grade" json:"grade"`
}

func (e GradeEntry) String() string {
	return fmt.Sprintf("Student: %s, Subject: %s, Grade: %.2f", e.StudentName, e.Subject, e.Value)
}

// ReportEntry is the mean grade of one student in one subject
type ReportEntry struct {
	StudentName string  `db:"student_name" json:"student_name"`
	Subject     string  `db:"subject" json:"subject"`
	Average     float64 `db:"average_grade" json:"average_grade"`
}

func (e ReportEntry) String() string {
	return fmt.Sprintf("Student: %s, Subject: %s, Average Grade: %.2f", e.StudentName, e.Subject, e.Average)
}

// Stats summarizes the size of the gradebook
type Stats struct {
	Students int `json:"students"`
	Grades   int `json:"grades"`
}
