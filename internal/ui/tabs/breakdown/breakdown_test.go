package breakdown

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwaldt/clinespend/internal/app"
	"github.com/mwaldt/clinespend/internal/models"
)

func testReport() *models.Report {
	r := models.NewReport("/tmp/tasks")
	r.Totals[models.TierSonnet4] = &models.TierTotals{
		Tokens:   models.TokenUsage{Input: 5000, Output: 2000},
		Requests: 3,
	}
	r.Totals[models.TierHaiku35] = &models.TierTotals{
		Tokens:   models.TokenUsage{Input: 1000, Output: 400},
		Requests: 1,
	}
	r.TierCosts[models.TierSonnet4] = 0.045
	r.TierCosts[models.TierHaiku35] = 0.0024
	r.TotalCost = 0.0474
	r.CombinedTokens = models.TokenUsage{Input: 6000, Output: 2400}
	r.TotalRequests = 4
	return r
}

func TestNew(t *testing.T) {
	m := New(app.NewState())
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_View(t *testing.T) {
	state := app.NewState()
	m := New(state)
	m.SetSize(100, 40)

	// No report yet
	view := m.View()
	if !strings.Contains(view, "Waiting for first scan") {
		t.Error("View should show waiting placeholder")
	}

	state.SetReport(testReport())

	view = m.View()
	if !strings.Contains(view, "Claude Sonnet 4") {
		t.Error("View should list active models")
	}
	if !strings.Contains(view, "Claude 3.5 Haiku") {
		t.Error("View should list all active models")
	}
	if strings.Contains(view, "Claude Opus 4") {
		t.Error("View should not list models without requests")
	}
	if !strings.Contains(view, "$0.0450") {
		t.Error("View should show per-model cost")
	}
	if !strings.Contains(view, "$0.0474") {
		t.Error("View should show total cost")
	}
}

func TestModel_View_Empty(t *testing.T) {
	state := app.NewState()
	state.SetReport(models.NewReport("/tmp/tasks"))
	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "No usage data found") {
		t.Error("empty report should show placeholder")
	}
}

func TestModel_Navigation(t *testing.T) {
	state := app.NewState()
	state.SetReport(testReport())
	m := New(state)
	m.SetSize(100, 40)

	if m.selectedIndex != 0 {
		t.Fatalf("initial selection = %d", m.selectedIndex)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.selectedIndex != 1 {
		t.Errorf("selection after j = %d, want 1", m.selectedIndex)
	}

	// Wraps around
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.selectedIndex != 0 {
		t.Errorf("selection after wrap = %d, want 0", m.selectedIndex)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.selectedIndex != 1 {
		t.Errorf("selection after k = %d, want 1", m.selectedIndex)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if m.selectedIndex != 0 {
		t.Errorf("selection after g = %d, want 0", m.selectedIndex)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if m.selectedIndex != 1 {
		t.Errorf("selection after G = %d, want 1", m.selectedIndex)
	}
}

func TestModel_SelectedDetail(t *testing.T) {
	state := app.NewState()
	state.SetReport(testReport())
	m := New(state)
	m.SetSize(100, 40)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	view := m.View()

	// Detail card for the selected haiku tier shows its token counts
	if !strings.Contains(view, "1,000") {
		t.Error("detail card should show selected model's input tokens")
	}
}

func TestModel_Help(t *testing.T) {
	m := New(app.NewState())
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
