// Package breakdown provides the per-model cost breakdown tab.
package breakdown

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwaldt/clinespend/internal/app"
	"github.com/mwaldt/clinespend/internal/models"
)

// keyMap defines the key bindings specific to the breakdown tab.
type keyMap struct {
	NextModel key.Binding
	PrevModel key.Binding
	First     key.Binding
	Last      key.Binding
}

// defaultKeyMap returns the default key bindings for the breakdown tab.
func defaultKeyMap() keyMap {
	return keyMap{
		NextModel: key.NewBinding(
			key.WithKeys("n", "j", "down"),
			key.WithHelp("j/n", "next model"),
		),
		PrevModel: key.NewBinding(
			key.WithKeys("p", "k", "up"),
			key.WithHelp("k/p", "prev model"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first model"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last model"),
		),
	}
}

// Model represents the breakdown tab state.
type Model struct {
	state         *app.State
	keys          keyMap
	viewport      viewport.Model
	width         int
	height        int
	selectedIndex int
}

// New creates a new breakdown model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the breakdown tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the breakdown tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m, m.handleKeyMsg(keyMsg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	tiers := m.activeTiers()
	count := len(tiers)

	switch {
	case key.Matches(msg, m.keys.NextModel):
		if count > 0 {
			m.selectedIndex = (m.selectedIndex + 1) % count
		}
	case key.Matches(msg, m.keys.PrevModel):
		if count > 0 {
			m.selectedIndex = (m.selectedIndex - 1 + count) % count
		}
	case key.Matches(msg, m.keys.First):
		m.selectedIndex = 0
	case key.Matches(msg, m.keys.Last):
		if count > 0 {
			m.selectedIndex = count - 1
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) activeTiers() []models.ModelTier {
	report := m.state.GetReport()
	if report == nil {
		return nil
	}
	return report.ActiveTiers()
}

// SetSize sets the available size for the breakdown tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.NextModel,
		m.keys.PrevModel,
	}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextModel, m.keys.PrevModel},
		{m.keys.First, m.keys.Last},
	}
}
