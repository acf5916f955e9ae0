// Package app wires the store and services into a single container
package app

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/gradebook/internal/database"
	gradeservice "github.com/thenoetrevino/gradebook/internal/services/grade"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	store *database.Store

	logger *slog.Logger

	// Service layer (business logic)
	GradeService gradeservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sqlx.DB, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	store := database.NewStore(db)

	return &App{
		store:        store,
		logger:       cfg.logger,
		GradeService: gradeservice.NewService(store, cfg.logger),
	}
}

// Store returns the underlying store for direct database access
func (a *App) Store() *database.Store {
	return a.store
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database
func (a *App) Close() error {
	return a.store.Close()
}
