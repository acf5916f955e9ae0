package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/gradebook/internal/database"
)

// SetupTestStore creates an in-memory database with full schema.
// The database is closed when the test finishes.
func SetupTestStore(t *testing.T) *database.Store {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return database.NewStore(db)
}

// SeedGrade records a grade for name in subject and returns the grade ID
func SeedGrade(t *testing.T, store *database.Store, name, subject string, value float64) int {
	t.Helper()
	ctx := context.Background()

	studentID, err := store.FindOrCreateStudent(ctx, name)
	if err != nil {
		t.Fatalf("Failed to create student %q: %v", name, err)
	}

	gradeID, err := store.InsertGrade(ctx, studentID, subject, value)
	if err != nil {
		t.Fatalf("Failed to insert grade for %q in %q: %v", name, subject, err)
	}

	return gradeID
}

// CountGrades returns the number of stored grades, failing the test on error
func CountGrades(t *testing.T, store *database.Store) int {
	t.Helper()
	count, err := store.CountGrades(context.Background())
	if err != nil {
		t.Fatalf("Failed to count grades: %v", err)
	}
	return count
}

// CountStudents returns the number of stored students, failing the test on error
func CountStudents(t *testing.T, store *database.Store) int {
	t.Helper()
	count, err := store.CountStudents(context.Background())
	if err != nil {
		t.Fatalf("Failed to count students: %v", err)
	}
	return count
}
