package session

// Operator facing text
const (
	menuRule  = "==========================="
	menuTitle = "       Student Grade Tracker"

	promptChoice      = "Choose an option (1-6): "
	promptStudentName = "Enter student name: "
	promptSubject     = "Enter subject name: "
	promptGradeFmt    = "Enter grade for %s (0 - 100): "
	promptAvgSubject  = "Enter the subject name to calculate the average grade: "
	promptEditStudent = "Enter the student name: "
	promptEditSubject = "Enter the subject name: "
	promptNewGrade    = "Enter the new grade: "

	msgInvalidChoice    = "Invalid choice. Please select a valid option from the menu."
	msgFarewell         = "Exiting Student Grade Tracker. Goodbye!"
	msgEmptyStudentName = "Student name cannot be empty."
	msgEmptySubject     = "Subject name cannot be empty."
	msgInvalidGrade     = "Invalid input. Please enter a numeric grade."
	msgGradeOutOfRange  = "Grade must be between 0 and 100."
	msgGradeNotFound    = "No matching grade found for the given student and subject."
	msgGradeUpdated     = "Grade updated successfully."
	msgNoGrades         = "No grades available."
	msgNoReport         = "No grades available for the report."

	fmtGradeAdded     = "Grade %.2f added for %s in %s."
	fmtNoSubjectGrade = "No grades available for the subject: %s."
	fmtAverage        = "\nAverage grade for %s: %.2f"
	fmtCurrentGrade   = "Current grade for %s in %s: %.2f"

	headerGrades = "Grades by Student and Subject:"
	ruleGrades   = "=============================="
	headerReport = "Detailed Grade Report:"
	ruleReport   = "======================="
)

var menuOptions = []string{
	"1. Add grades for a student",
	"2. View all grades",
	"3. Calculate average grade for a subject",
	"4. Edit a student grade",
	"5. Generate detailed grade report",
	"6. Exit",
}
