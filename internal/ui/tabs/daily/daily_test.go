package daily

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwaldt/clinespend/internal/app"
	"github.com/mwaldt/clinespend/internal/models"
)

func testReport(days int) *models.Report {
	r := models.NewReport("/tmp/tasks")
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	var stats []models.DailyStat
	for i := 0; i < days; i++ {
		stats = append(stats, models.DailyStat{
			Date:     start.AddDate(0, 0, i),
			Tokens:   models.TokenUsage{Input: 1000, Output: 500},
			Cost:     0.01 * float64(i+1),
			Requests: i + 1,
		})
	}

	r.Daily = models.DailySummary{
		Days:        stats,
		ActiveDays:  len(stats),
		AvgCost:     0.02,
		MaxCost:     0.01 * float64(days),
		MinCost:     0.01,
		AvgTokens:   1500,
		MaxTokens:   1500,
		AvgRequests: 2,
		MaxRequests: days,
	}
	r.TotalRequests = days
	r.Period = models.UsagePeriod{
		HasData:   true,
		DateRange: "2025-06-01 to 2025-06-30",
	}
	return r
}

func TestNew(t *testing.T) {
	m := New(app.NewState())
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.timeRange != models.TimeRange30Days {
		t.Error("default time range should be 30 days")
	}
}

func TestModel_ToggleRange(t *testing.T) {
	m := New(app.NewState())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.timeRange != models.TimeRange90Days {
		t.Errorf("time range after toggle = %v, want 90 days", m.timeRange)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.timeRange != models.TimeRange7Days {
		t.Errorf("time range after full cycle = %v, want 7 days", m.timeRange)
	}
}

func TestModel_VisibleDays(t *testing.T) {
	state := app.NewState()
	state.SetReport(testReport(60))
	m := New(state)

	// Default 30-day range trims to the most recent 30
	days := m.visibleDays()
	if len(days) != 30 {
		t.Fatalf("visible days = %d, want 30", len(days))
	}
	if !days[len(days)-1].Date.Equal(time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last visible day = %v", days[len(days)-1].Date)
	}

	m.timeRange = models.TimeRangeAllTime
	if got := len(m.visibleDays()); got != 60 {
		t.Errorf("all-time visible days = %d, want 60", got)
	}

	m.timeRange = models.TimeRange7Days
	if got := len(m.visibleDays()); got != 7 {
		t.Errorf("7-day visible days = %d, want 7", got)
	}
}

func TestModel_View(t *testing.T) {
	state := app.NewState()
	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Waiting for first scan") {
		t.Error("View should show waiting placeholder")
	}

	state.SetReport(testReport(10))

	view = m.View()
	if !strings.Contains(view, "Daily Statistics") {
		t.Error("View should show title")
	}
	if !strings.Contains(view, "30 Days") {
		t.Error("View should show the time range")
	}
	if !strings.Contains(view, "10 active days") {
		t.Error("View should show active day count")
	}
	if !strings.Contains(view, "$0.0200") {
		t.Error("View should show average daily cost")
	}
	if !strings.Contains(view, "2025-06-10") {
		t.Error("recent days table should show dates")
	}
}

func TestModel_View_PeakVariation(t *testing.T) {
	state := app.NewState()
	r := testReport(5)
	r.Daily.PeakVariationPct = 150
	r.Daily.HasPeakVariation = true
	state.SetReport(r)

	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "150.0% above average") {
		t.Error("View should show peak variation")
	}
}

func TestModel_View_Empty(t *testing.T) {
	state := app.NewState()
	state.SetReport(models.NewReport("/tmp/tasks"))
	m := New(state)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "No timestamped requests") {
		t.Error("empty summary should show placeholder")
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
