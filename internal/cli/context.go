package cli

import (
	"context"

	"github.com/thenoetrevino/gradebook/internal/app"
	"github.com/thenoetrevino/gradebook/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// AppKey injects a ready App into command contexts (tests use this)
	AppKey contextKey = "app"

	configKey contextKey = "config"
)

// WithApp returns a context that makes GetCLIFromContext reuse application
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, AppKey, application)
}

// WithConfig returns a context carrying cfg
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the config stored by Bootstrap, or the defaults
func ConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.Default()
}

// GetCLIFromContext returns a CLI for the current command. An App injected
// with WithApp is reused as is; otherwise the configured database is opened.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if application, ok := ctx.Value(AppKey).(*app.App); ok && application != nil {
		return &CLI{App: application, borrowed: true}, nil
	}
	return NewCLI(ctx, ConfigFromContext(ctx))
}
