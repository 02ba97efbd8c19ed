// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// clineStorageDir is the VS Code extension storage directory holding the
// per-task folders.
const clineStorageDir = "saoudrizwan.claude-dev/tasks"

// Config holds the application configuration.
type Config struct {
	TasksPath       string
	LogFile         string
	MonthlyBudget   float64
	RefreshDebounce time.Duration
}

// Default values
const (
	defaultRefreshDebounce = 500 * time.Millisecond
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		TasksPath:       getEnvString("CLINE_TASKS_PATH", getDefaultTasksPath()),
		LogFile:         getEnvString("CLINESPEND_LOG_FILE", getDefaultLogPath()),
		MonthlyBudget:   getEnvFloat("CLINESPEND_MONTHLY_BUDGET", 0),
		RefreshDebounce: getEnvDuration("CLINESPEND_REFRESH_DEBOUNCE", defaultRefreshDebounce),
	}

	// Ensure log directory exists
	if err := ensureDir(filepath.Dir(cfg.LogFile)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "clinespend", ".env"),
			filepath.Join(home, ".clinespend", ".env"),
		)
	}

	return paths
}

// getDefaultTasksPath returns the first existing Cline task directory among
// the known VS Code storage locations, or the remote-server location when
// none exists yet.
func getDefaultTasksPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tasks"
	}

	candidates := []string{
		filepath.Join(home, ".vscode-server", "data", "User", "globalStorage", clineStorageDir),
		filepath.Join(home, ".config", "Code", "User", "globalStorage", clineStorageDir),
		filepath.Join(home, "Library", "Application Support", "Code", "User", "globalStorage", clineStorageDir),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return candidates[0]
}

// getDefaultLogPath returns the default path for the log file.
func getDefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "clinespend.log"
	}
	return filepath.Join(home, ".config", "clinespend", "clinespend.log")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
