package info

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwaldt/clinespend/internal/app"
	"github.com/mwaldt/clinespend/internal/config"
	"github.com/mwaldt/clinespend/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		TasksPath:       "/home/user/.vscode/tasks",
		LogFile:         "/tmp/clinespend.log",
		MonthlyBudget:   15,
		RefreshDebounce: 500 * time.Millisecond,
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewState(), testConfig())
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_View(t *testing.T) {
	state := app.NewState()
	m := New(state, testConfig())
	m.SetSize(100, 50)

	view := m.View()
	if !strings.Contains(view, "/home/user/.vscode/tasks") {
		t.Error("View should show tasks path")
	}
	if !strings.Contains(view, "$15.00 / month") {
		t.Error("View should show monthly budget")
	}
	if !strings.Contains(view, "500ms") {
		t.Error("View should show refresh debounce")
	}
	if !strings.Contains(view, "No scan has completed yet") {
		t.Error("View should show scan placeholder before first scan")
	}
	if !strings.Contains(view, "Claude Opus 4") {
		t.Error("View should show pricing table rows")
	}
	if !strings.Contains(view, "$75.00") {
		t.Error("View should show opus output rate")
	}
}

func TestModel_View_ScanCounters(t *testing.T) {
	state := app.NewState()
	r := models.NewReport("/tmp/tasks")
	r.Counters = models.ScanCounters{Processed: 4, Skipped: 2, Entries: 9}
	state.SetReport(r)

	m := New(state, testConfig())
	m.SetSize(100, 50)

	view := m.View()
	if !strings.Contains(view, "4") || !strings.Contains(view, "9") {
		t.Error("View should show scan counters")
	}
}

func TestModel_View_NilConfig(t *testing.T) {
	m := New(app.NewState(), nil)
	m.SetSize(100, 50)

	view := m.View()
	if !strings.Contains(view, "Configuration not loaded") {
		t.Error("nil config should show placeholder")
	}
}

func TestModel_Update(t *testing.T) {
	m := New(app.NewState(), testConfig())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if updated == nil {
		t.Error("Update returned nil model")
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewState(), testConfig())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
