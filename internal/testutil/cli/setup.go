package cli

import (
	"testing"

	"github.com/thenoetrevino/gradebook/internal/app"
	"github.com/thenoetrevino/gradebook/internal/database"
	"github.com/thenoetrevino/gradebook/internal/testutil"
)

// SetupCLITest creates an in-memory store and an App on top of it.
// This helper lives in its own package so service tests importing testutil
// don't pull in the CLI.
func SetupCLITest(t *testing.T) (*database.Store, *app.App) {
	t.Helper()
	store := testutil.SetupTestStore(t)

	return store, app.New(store.DB())
}

// SeedGrade wraps testutil.SeedGrade for CLI tests
func SeedGrade(t *testing.T, store *database.Store, name, subject string, value float64) int {
	t.Helper()
	return testutil.SeedGrade(t, store, name, subject, value)
}
