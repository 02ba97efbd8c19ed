// Package styles defines the visual styling for the application.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color definitions for the clinespend theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("205") // Pink
	Secondary = lipgloss.Color("63")  // Purple
	Subtle    = lipgloss.Color("240") // Gray

	// Model family colors
	Opus   = lipgloss.Color("208") // Orange
	Sonnet = lipgloss.Color("39")  // Blue
	Haiku  = lipgloss.Color("114") // Soft green

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Background colors
	BgDark   = lipgloss.Color("235")
	BgLight  = lipgloss.Color("237")
	BgAccent = lipgloss.Color("236")

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")

	// ToastStyle for floating notifications.
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginBottom(1)
)

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary).
	MarginBottom(1)

// DocStyle provides consistent document margins.
var DocStyle = lipgloss.NewStyle().
	Margin(1, 2).
	Padding(0, 1)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(1, 2).
	MarginBottom(1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpKeyStyle styles keyboard shortcut keys.
var HelpKeyStyle = lipgloss.NewStyle().
	Foreground(Primary).
	Bold(true)

// HelpDescStyle styles help descriptions.
var HelpDescStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// HelpPanelStyle creates the help overlay panel.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(Primary).
	Padding(1, 3).
	Background(BgDark)

// TableHeaderStyle styles table headers.
var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(Subtle)

// TableCellStyle styles table cells.
var TableCellStyle = lipgloss.NewStyle().
	Padding(0, 1)

// TableSelectedStyle styles selected table rows.
var TableSelectedStyle = lipgloss.NewStyle().
	Background(BgAccent).
	Foreground(TextPrimary).
	Bold(true)

// CostStyle renders dollar amounts.
var CostStyle = lipgloss.NewStyle().
	Foreground(Success).
	Bold(true)

// TokenCountStyle renders token totals.
var TokenCountStyle = lipgloss.NewStyle().
	Foreground(TextPrimary)

// ErrorTextStyle for error messages.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error)

// SuccessTextStyle for success messages.
var SuccessTextStyle = lipgloss.NewStyle().
	Foreground(Success)

// WarningTextStyle for warning messages.
var WarningTextStyle = lipgloss.NewStyle().
	Foreground(Warning)

// InfoTextStyle for info messages.
var InfoTextStyle = lipgloss.NewStyle().
	Foreground(Info)

// TipStyle renders the rotating usage tip.
var TipStyle = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Italic(true)

// OpusStyle styles Opus model labels.
var OpusStyle = lipgloss.NewStyle().
	Foreground(Opus).
	Bold(true)

// SonnetStyle styles Sonnet model labels.
var SonnetStyle = lipgloss.NewStyle().
	Foreground(Sonnet)

// HaikuStyle styles Haiku model labels.
var HaikuStyle = lipgloss.NewStyle().
	Foreground(Haiku)

// OtherModelStyle styles unclassified model labels.
var OtherModelStyle = lipgloss.NewStyle().
	Foreground(Subtle)

// BudgetSafeStyle for spending well under budget.
var BudgetSafeStyle = lipgloss.NewStyle().
	Foreground(Success)

// BudgetWarningStyle for spending approaching the budget.
var BudgetWarningStyle = lipgloss.NewStyle().
	Foreground(Warning).
	Bold(true)

// BudgetOverStyle for spending past the budget.
var BudgetOverStyle = lipgloss.NewStyle().
	Foreground(Error).
	Bold(true)

// GetBudgetStyle returns the style for a spend-to-budget ratio.
func GetBudgetStyle(ratio float64) lipgloss.Style {
	switch {
	case ratio >= 1.0:
		return BudgetOverStyle
	case ratio >= 0.8:
		return BudgetWarningStyle
	default:
		return BudgetSafeStyle
	}
}

// GetModelStyle returns the style for a model family label.
func GetModelStyle(label string) lipgloss.Style {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "opus"):
		return OpusStyle
	case strings.Contains(l, "sonnet"):
		return SonnetStyle
	case strings.Contains(l, "haiku"):
		return HaikuStyle
	default:
		return OtherModelStyle
	}
}

// CenterHorizontal centers content horizontally within a given width.
func CenterHorizontal(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

// CenterBoth centers content both horizontally and vertically.
func CenterBoth(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
