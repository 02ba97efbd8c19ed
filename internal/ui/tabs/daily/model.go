// Package daily provides the daily statistics tab with the spend chart.
package daily

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwaldt/clinespend/internal/app"
	"github.com/mwaldt/clinespend/internal/models"
)

// keyMap defines the key bindings specific to the daily tab.
type keyMap struct {
	ToggleRange key.Binding
	Up          key.Binding
	Down        key.Binding
}

// defaultKeyMap returns the default key bindings for the daily tab.
func defaultKeyMap() keyMap {
	return keyMap{
		ToggleRange: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle time range"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// Model represents the daily tab state.
type Model struct {
	state    *app.State
	keys     keyMap
	viewport viewport.Model
	width    int
	height   int

	timeRange models.TimeRange
}

// New creates a new daily model.
func New(state *app.State) *Model {
	return &Model{
		state:     state,
		keys:      defaultKeyMap(),
		viewport:  viewport.New(0, 0),
		timeRange: models.TimeRange30Days,
	}
}

// Init initializes the daily tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the daily tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.ToggleRange):
			m.timeRange = m.timeRange.Next()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(keyMsg)
			return m, cmd
		}
	}
	return m, nil
}

// visibleDays returns the daily stats within the selected time range, most
// recent days last.
func (m *Model) visibleDays() []models.DailyStat {
	report := m.state.GetReport()
	if report == nil {
		return nil
	}

	days := report.Daily.Days
	limit := m.timeRange.Days()
	if limit > 0 && len(days) > limit {
		days = days[len(days)-limit:]
	}
	return days
}

// SetSize sets the available size for the daily tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.ToggleRange,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.ToggleRange},
		{m.keys.Up, m.keys.Down},
	}
}
