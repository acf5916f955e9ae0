// Package config loads gradebook settings from a YAML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/gradebook/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ColorScheme is re-exported so callers don't import the colors package
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	// DatabasePath is the SQLite file holding students and grades
	DatabasePath string `yaml:"database_path" env:"GRADEBOOK_DB_PATH"`

	// LogPath is the file debug logs are appended to
	LogPath  string `yaml:"log_path" env:"GRADEBOOK_LOG_PATH"`
	LogLevel string `yaml:"log_level" env:"GRADEBOOK_LOG_LEVEL"`

	// NoColor disables styling of menu and status output
	NoColor bool `yaml:"no_color" env:"GRADEBOOK_NO_COLOR"`

	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from GRADEBOOK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("GRADEBOOK_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Can't determine config path; defaults plus environment
		cfg := Default()
		loadThemeFile(cfg)
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit file path.
// A missing file yields the defaults; environment overrides always apply.
func LoadFrom(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	}

	loadThemeFile(&cfg)

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	cfg.applyDefaults()

	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to configPath
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the config file location used by Load and Save
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gradebook", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "gradebook", "config.yaml"), nil
}

// defaultLogPath returns ~/.gradebook/logs/gradebook.log, or "" when there
// is no home directory (logging is then discarded)
func defaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".gradebook", "logs", "gradebook.log")
}

// applyEnv overrides file values with GRADEBOOK_* environment variables
func (c *Config) applyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = "student_grades.db"
	}
	if c.LogPath == "" {
		c.LogPath = defaultLogPath()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.ColorScheme.ApplyDefaults()
}
