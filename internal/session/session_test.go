package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gradebook/internal/database"
	"github.com/thenoetrevino/gradebook/internal/models"
	gradeservice "github.com/thenoetrevino/gradebook/internal/services/grade"
	"github.com/thenoetrevino/gradebook/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupSession(t *testing.T) (gradeService, *database.Store) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	return gradeservice.NewService(store, nil), store
}

// runSession feeds input lines to a new session and returns everything it printed
func runSession(t *testing.T, svc gradeService, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"

	s := New(svc, strings.NewReader(input), &out, WithID("test-session"))
	require.NoError(t, s.Run(context.Background()))

	return out.String()
}

// failingService returns err from every read
type failingService struct {
	gradeService
	err error
}

func (f failingService) ListGrades(context.Context) ([]models.GradeEntry, error) {
	return nil, f.err
}

func (f failingService) Report(context.Context) ([]models.ReportEntry, error) {
	return nil, f.err
}

// ============================================================================
// MENU
// ============================================================================

func TestRun_MenuAndExit(t *testing.T) {
	t.Parallel()
	svc, _ := setupSession(t)

	output := runSession(t, svc, "6")

	expected := strings.Join([]string{
		"",
		"===========================",
		"       Student Grade Tracker",
		"===========================",
		"1. Add grades for a student",
		"2. View all grades",
		"3. Calculate average grade for a subject",
		"4. Edit a student grade",
		"5. Generate detailed grade report",
		"6. Exit",
		"",
		"Choose an option (1-6): Exiting Student Grade Tracker. Goodbye!",
		"",
	}, "\n")
	assert.Equal(t, expected, output)
}

func TestRun_InvalidChoice(t *testing.T) {
	t.Parallel()
	svc, _ := setupSession(t)

	output := runSession(t, svc, "9", "hello", "6")

	assert.Equal(t, 2, strings.Count(output, msgInvalidChoice))
	assert.Equal(t, 3, strings.Count(output, "6. Exit"), "menu is shown again after each invalid choice")
	assert.Contains(t, output, msgFarewell)
}

func TestRun_EndOfInputExitsCleanly(t *testing.T) {
	t.Parallel()
	svc, _ := setupSession(t)

	var out bytes.Buffer
	s := New(svc, strings.NewReader(""), &out)

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), msgFarewell)
	assert.NotEmpty(t, s.ID())
}

func TestRun_EndOfInputMidFeature(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	var out bytes.Buffer
	s := New(svc, strings.NewReader("1\nAlice\nMath\n"), &out)

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), msgFarewell)
	assert.Zero(t, testutil.CountGrades(t, store))
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()
	svc, _ := setupSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(svc, strings.NewReader("6\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ============================================================================
// ADD
// ============================================================================

func TestAdd_ThenView(t *testing.T) {
	t.Parallel()
	svc, _ := setupSession(t)

	output := runSession(t, svc,
		"1", "Alice", "Math", "85",
		"1", "Bob", "History", "72.456",
		"2",
		"6",
	)

	assert.Contains(t, output, "Enter grade for Math (0 - 100): ")
	assert.Contains(t, output, "Grade 85.00 added for Alice in Math.")
	assert.Contains(t, output, "Grade 72.46 added for Bob in History.")
	assert.Contains(t, output, "Grades by Student and Subject:")
	assert.Contains(t, output, "Student: Alice, Subject: Math, Grade: 85.00\n")
	assert.Contains(t, output, "Student: Bob, Subject: History, Grade: 72.46\n")
}

func TestAdd_NonNumericGradeWritesNothing(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	before := testutil.CountGrades(t, store)
	output := runSession(t, svc, "1", "Alice", "Math", "ninety", "6")

	assert.Contains(t, output, msgInvalidGrade)
	assert.Equal(t, before, testutil.CountGrades(t, store))

	// The student is resolved before the grade is read, so it stays behind
	assert.Equal(t, 1, testutil.CountStudents(t, store))
}

func TestAdd_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lines    []string
		message  string
		students int
	}{
		{"empty name", []string{"1", "   "}, msgEmptyStudentName, 0},
		{"empty subject", []string{"1", "Alice", ""}, msgEmptySubject, 1},
		{"above range", []string{"1", "Alice", "Math", "100.5"}, msgGradeOutOfRange, 1},
		{"below range", []string{"1", "Alice", "Math", "-3"}, msgGradeOutOfRange, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := setupSession(t)

			output := runSession(t, svc, append(tt.lines, "6")...)

			assert.Contains(t, output, tt.message)
			assert.NotContains(t, output, "added for")
			assert.Zero(t, testutil.CountGrades(t, store))
			assert.Equal(t, tt.students, testutil.CountStudents(t, store))
		})
	}
}

func TestAdd_BoundaryValues(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	output := runSession(t, svc,
		"1", "Alice", "Math", "0",
		"1", "Alice", "Math", "100",
		"6",
	)

	assert.Contains(t, output, "Grade 0.00 added for Alice in Math.")
	assert.Contains(t, output, "Grade 100.00 added for Alice in Math.")
	assert.Equal(t, 2, testutil.CountGrades(t, store))
	assert.Equal(t, 1, testutil.CountStudents(t, store))
}

// ============================================================================
// VIEW / AVERAGE / REPORT
// ============================================================================

func TestView_Empty(t *testing.T) {
	t.Parallel()
	svc, _ := setupSession(t)

	output := runSession(t, svc, "2", "6")
	assert.Contains(t, output, msgNoGrades)
	assert.NotContains(t, output, "Grades by Student and Subject:")
}

func TestAverage(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	testutil.SeedGrade(t, store, "Alice", "Math", 80)
	testutil.SeedGrade(t, store, "Bob", "Math", 90)

	output := runSession(t, svc, "3", "Math", "3", "Art", "3", "", "6")

	assert.Contains(t, output, "Average grade for Math: 85.00")
	assert.Contains(t, output, "No grades available for the subject: Art.")
	assert.Contains(t, output, msgEmptySubject)
}

func TestAverage_CaseSensitive(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	testutil.SeedGrade(t, store, "Alice", "Math", 80)

	output := runSession(t, svc, "3", "math", "6")
	assert.Contains(t, output, "No grades available for the subject: math.")
}

func TestReport_SortedByStudentThenSubject(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	testutil.SeedGrade(t, store, "Bob", "Math", 70)
	testutil.SeedGrade(t, store, "Alice", "Math", 80)
	testutil.SeedGrade(t, store, "Alice", "Art", 95)
	testutil.SeedGrade(t, store, "Alice", "Math", 90)

	output := runSession(t, svc, "5", "6")

	assert.Contains(t, output, "Detailed Grade Report:")

	aliceArt := strings.Index(output, "Student: Alice, Subject: Art, Average Grade: 95.00")
	aliceMath := strings.Index(output, "Student: Alice, Subject: Math, Average Grade: 85.00")
	bobMath := strings.Index(output, "Student: Bob, Subject: Math, Average Grade: 70.00")

	require.NotEqual(t, -1, aliceArt)
	require.NotEqual(t, -1, aliceMath)
	require.NotEqual(t, -1, bobMath)
	assert.Less(t, aliceArt, aliceMath)
	assert.Less(t, aliceMath, bobMath)
}

func TestReport_Empty(t *testing.T) {
	t.Parallel()
	svc, _ := setupSession(t)

	output := runSession(t, svc, "5", "6")
	assert.Contains(t, output, msgNoReport)
}

// ============================================================================
// EDIT
// ============================================================================

func TestEdit_UpdatesGrade(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	testutil.SeedGrade(t, store, "Alice", "Math", 60)

	output := runSession(t, svc, "4", "Alice", "Math", "95", "2", "6")

	assert.Contains(t, output, "Current grade for Alice in Math: 60.00")
	assert.Contains(t, output, msgGradeUpdated)
	assert.Contains(t, output, "Student: Alice, Subject: Math, Grade: 95.00")
}

func TestEdit_OutOfRangeLeavesValue(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	testutil.SeedGrade(t, store, "Alice", "Math", 60)

	output := runSession(t, svc, "4", "Alice", "Math", "150", "2", "6")

	assert.Contains(t, output, msgGradeOutOfRange)
	assert.NotContains(t, output, msgGradeUpdated)
	assert.Contains(t, output, "Student: Alice, Subject: Math, Grade: 60.00")
}

func TestEdit_NonNumericLeavesValue(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	testutil.SeedGrade(t, store, "Alice", "Math", 60)

	output := runSession(t, svc, "4", "Alice", "Math", "sixty", "2", "6")

	assert.Contains(t, output, msgInvalidGrade)
	assert.Contains(t, output, "Student: Alice, Subject: Math, Grade: 60.00")
}

func TestEdit_NoMatchingGrade(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	testutil.SeedGrade(t, store, "Alice", "Math", 60)

	output := runSession(t, svc, "4", "Alice", "Art", "6")

	assert.Contains(t, output, msgGradeNotFound)
	assert.NotContains(t, output, "Current grade")
	assert.Equal(t, 1, testutil.CountGrades(t, store))
	assert.Equal(t, 1, testutil.CountStudents(t, store))
}

// Edit does not reject blank input the way Add does. Blank fields fall through
// to the lookup and report "no matching grade" instead of an empty-input message.
func TestEdit_BlankInputNotRejectedAsEmpty(t *testing.T) {
	t.Parallel()
	svc, _ := setupSession(t)

	output := runSession(t, svc, "4", "", "", "6")

	assert.Contains(t, output, msgGradeNotFound)
	assert.NotContains(t, output, msgEmptyStudentName)
	assert.NotContains(t, output, msgEmptySubject)
}

func TestEdit_DuplicatePicksEarliest(t *testing.T) {
	t.Parallel()
	svc, store := setupSession(t)

	testutil.SeedGrade(t, store, "Alice", "Math", 40)
	testutil.SeedGrade(t, store, "Alice", "Math", 90)

	output := runSession(t, svc, "4", "Alice", "Math", "50", "2", "6")

	assert.Contains(t, output, "Current grade for Alice in Math: 40.00")
	assert.Contains(t, output, "Student: Alice, Subject: Math, Grade: 50.00")
	assert.Contains(t, output, "Student: Alice, Subject: Math, Grade: 90.00")
}

// ============================================================================
// FAILURES
// ============================================================================

func TestRun_StoreFailureIsReported(t *testing.T) {
	t.Parallel()
	svc := failingService{err: errors.New("disk on fire")}

	output := runSession(t, svc, "2", "5", "6")

	assert.Equal(t, 2, strings.Count(output, "Error: disk on fire"))
	assert.Contains(t, output, msgFarewell)
}
