// Package cli holds the shared plumbing of the gradebook commands
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/gradebook/internal/app"
	"github.com/thenoetrevino/gradebook/internal/cli/styles"
	"github.com/thenoetrevino/gradebook/internal/config"
	"github.com/thenoetrevino/gradebook/internal/database"
	"github.com/thenoetrevino/gradebook/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// borrowed is set when App was injected by the caller, who owns closing it
	borrowed bool
}

// NewCLI opens the configured database and builds the application container
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithLogger(logging.Logger))

	return &CLI{App: application}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}

// BootstrapOptions are command line overrides applied on top of the config file
type BootstrapOptions struct {
	DatabasePath string
	NoColor      bool

	// Output is where human output goes; styles stay off unless it is a terminal
	Output io.Writer
}

// Bootstrap loads configuration, starts logging and styles, and returns a
// context carrying the resulting config for GetCLIFromContext.
func Bootstrap(ctx context.Context, opts BootstrapOptions) (context.Context, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.DatabasePath != "" {
		cfg.DatabasePath = opts.DatabasePath
	}
	if opts.NoColor {
		cfg.NoColor = true
	}

	closer, err := logging.Init(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		// Logging is best effort; keep running without a log file
		closer, _ = logging.Init("", cfg.LogLevel)
	}

	if cfg.NoColor || !styles.IsTerminal(opts.Output) {
		styles.Disable()
	} else {
		styles.Init(cfg.ColorScheme)
	}

	slog.Debug("configuration loaded", "database_path", cfg.DatabasePath, "no_color", cfg.NoColor)

	return WithConfig(ctx, cfg), closer, nil
}
