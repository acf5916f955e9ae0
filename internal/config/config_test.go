package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.DatabasePath != "student_grades.db" {
		t.Errorf("DatabasePath = %s, want student_grades.db (default)", cfg.DatabasePath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info (default)", cfg.LogLevel)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default accent", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "gradebook")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `database_path: /tmp/school.db
log_level: debug
no_color: true
theme:
  preset: monochrome
  error: "#AA0000"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.DatabasePath != "/tmp/school.db" {
		t.Errorf("DatabasePath = %s, want /tmp/school.db", cfg.DatabasePath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}

	// Custom value wins, the rest comes from the preset
	if cfg.ColorScheme.Error != "#AA0000" {
		t.Errorf("Error color = %s, want #AA0000", cfg.ColorScheme.Error)
	}
	if cfg.ColorScheme.Accent != MonochromeColorScheme().Accent {
		t.Errorf("Accent = %s, want monochrome accent", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("database_path: from-file.db\n"), 0o644))

	t.Setenv("GRADEBOOK_DB_PATH", "from-env.db")
	t.Setenv("GRADEBOOK_LOG_LEVEL", "warn")

	cfg, err := LoadFrom(configPath)
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("database_path: [unterminated\n"), 0o644))

	_, err := LoadFrom(configPath)
	assert.Error(t, err)
}

func TestThemeFileLoading(t *testing.T) {
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte(`theme:
  accent: "#FF0000"
  success: "#00FF00"
`), 0o644))

	t.Setenv("GRADEBOOK_THEME_FILE", themePath)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Success)
	assert.Equal(t, DefaultColorScheme().Error, cfg.ColorScheme.Error)
}

func TestSaveRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.DatabasePath = "saved.db"
	require.NoError(t, cfg.SaveTo(configPath))

	loaded, err := LoadFrom(configPath)
	require.NoError(t, err)
	assert.Equal(t, "saved.db", loaded.DatabasePath)
}
