package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	key := "TEST_ENV_STRING"
	val := "test_value"
	os.Setenv(key, val)
	defer os.Unsetenv(key)

	if got := getEnvString(key, "default"); got != val {
		t.Errorf("getEnvString() = %q, want %q", got, val)
	}

	if got := getEnvString("NON_EXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_ENV_FLOAT"

	tests := []struct {
		name       string
		envVal     string
		defaultVal float64
		want       float64
	}{
		{"ValidFloat", "42.5", 0, 42.5},
		{"ValidInt", "100", 0, 100},
		{"Invalid", "not-a-number", 7, 7},
		{"Empty", "", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvFloat(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvFloat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name       string
		envVal     string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"ValidDuration", "1m", time.Second, time.Minute},
		{"ValidSeconds", "60", time.Second, 60 * time.Second},
		{"Invalid", "invalid", time.Second, time.Second},
		{"Empty", "", time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvDuration(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir")

	if err := ensureDir(path); err != nil {
		t.Fatalf("ensureDir() failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("directory was not created")
	}

	if err := ensureDir(""); err != nil {
		t.Error("ensureDir(\"\") should not error")
	}
}

func TestGetEnvPaths(t *testing.T) {
	paths := getEnvPaths()
	if len(paths) == 0 {
		t.Error("getEnvPaths() returned empty list")
	}

	// Basic check that it contains current directory
	cwd, _ := os.Getwd()
	found := false
	for _, p := range paths {
		if p == filepath.Join(cwd, ".env") {
			found = true
			break
		}
	}
	if !found {
		t.Error("getEnvPaths() missing current directory .env")
	}
}

func TestGetDefaultTasksPath(t *testing.T) {
	tmpDir := t.TempDir()
	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	// With no storage directory present, the remote-server location is the
	// fallback.
	want := filepath.Join(tmpDir, ".vscode-server", "data", "User", "globalStorage", clineStorageDir)
	if got := getDefaultTasksPath(); got != want {
		t.Errorf("getDefaultTasksPath() = %q, want %q", got, want)
	}

	// An existing desktop storage directory wins over the fallback.
	desktop := filepath.Join(tmpDir, ".config", "Code", "User", "globalStorage", clineStorageDir)
	if err := os.MkdirAll(desktop, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := getDefaultTasksPath(); got != desktop {
		t.Errorf("getDefaultTasksPath() = %q, want existing %q", got, desktop)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(tmpDir)

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	os.Setenv("CLINE_TASKS_PATH", filepath.Join(tmpDir, "tasks"))
	os.Setenv("CLINESPEND_MONTHLY_BUDGET", "50")
	defer os.Unsetenv("CLINE_TASKS_PATH")
	defer os.Unsetenv("CLINESPEND_MONTHLY_BUDGET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TasksPath != filepath.Join(tmpDir, "tasks") {
		t.Errorf("TasksPath = %q", cfg.TasksPath)
	}
	if cfg.MonthlyBudget != 50 {
		t.Errorf("MonthlyBudget = %v, want 50", cfg.MonthlyBudget)
	}
	if cfg.RefreshDebounce != defaultRefreshDebounce {
		t.Errorf("RefreshDebounce = %v, want %v", cfg.RefreshDebounce, defaultRefreshDebounce)
	}
}

func TestLoad_WithEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env")
	content := "CLINE_TASKS_PATH=/custom/tasks\nCLINESPEND_MONTHLY_BUDGET=25"
	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Change working directory to tmpDir so Load finds .env
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(tmpDir)

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", origHome)

	os.Unsetenv("CLINE_TASKS_PATH")
	os.Unsetenv("CLINESPEND_MONTHLY_BUDGET")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TasksPath != "/custom/tasks" {
		t.Errorf("TasksPath = %q, want /custom/tasks", cfg.TasksPath)
	}
	if cfg.MonthlyBudget != 25 {
		t.Errorf("MonthlyBudget = %v, want 25", cfg.MonthlyBudget)
	}
}
