package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwaldt/clinespend/internal/models"
	"github.com/mwaldt/clinespend/internal/pricing"
	"github.com/mwaldt/clinespend/internal/ui/styles"
	"github.com/mwaldt/clinespend/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderScanCard())
	sections = append(sections, m.renderPricingCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderTitle renders the info tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration, scan details and pricing")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderConfigCard renders the configuration card.
func (m *Model) renderConfigCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderConfigRow("Tasks Path", m.config.TasksPath))
		logFile := m.config.LogFile
		if logFile == "" {
			logFile = "(disabled)"
		}
		rows = append(rows, m.renderConfigRow("Log File", logFile))
		budget := "(not set)"
		if m.config.MonthlyBudget > 0 {
			budget = fmt.Sprintf("$%.2f / month", m.config.MonthlyBudget)
		}
		rows = append(rows, m.renderConfigRow("Monthly Budget", budget))
		rows = append(rows, m.renderConfigRow("Refresh Debounce", m.config.RefreshDebounce.String()))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderScanCard renders the last scan's counters.
func (m *Model) renderScanCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Last Scan"))
	rows = append(rows, "")

	report := m.state.GetReport()
	if report == nil {
		rows = append(rows, styles.HelpStyle.Render("No scan has completed yet"))
	} else {
		c := report.Counters
		rows = append(rows, m.renderConfigRow("Scanned At", report.GeneratedAt.Format("2006-01-02 15:04:05")))
		rows = append(rows, m.renderConfigRow("Folders Processed", fmt.Sprintf("%d", c.Processed)))
		rows = append(rows, m.renderConfigRow("Folders Skipped", fmt.Sprintf("%d", c.Skipped)))
		rows = append(rows, m.renderConfigRow("Usage Entries", fmt.Sprintf("%d", c.Entries)))

		if err := m.state.GetScanError(); err != nil {
			rows = append(rows, "")
			rows = append(rows, styles.ErrorTextStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderPricingCard renders the per-million-token rate table.
func (m *Model) renderPricingCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Pricing (per 1M tokens)"))
	rows = append(rows, "")

	header := fmt.Sprintf("%-20s %7s %7s %8s %7s", "Model", "In", "Out", "CacheW", "CacheR")
	rows = append(rows, styles.TableHeaderStyle.Render(header))

	table := pricing.DefaultTable()
	for _, tier := range models.AllTiers() {
		card := table.Card(tier)
		rows = append(rows, fmt.Sprintf("%-20s %7s %7s %8s %7s",
			tier.DisplayName(),
			fmt.Sprintf("$%.2f", card.Input),
			fmt.Sprintf("$%.2f", card.Output),
			fmt.Sprintf("$%.2f", card.CacheWrite),
			fmt.Sprintf("$%.2f", card.CacheRead),
		))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderAboutCard renders the about/version information card.
func (m *Model) renderAboutCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About clinespend"))
	rows = append(rows, "")

	rows = append(rows, m.renderConfigRow("Version", version.GetVersion()))
	rows = append(rows, m.renderConfigRow("Build Date", version.GetDate()))
	rows = append(rows, m.renderConfigRow("Git Commit", version.GetCommit()))
	rows = append(rows, m.renderConfigRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderConfigRow renders a key-value row.
func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}
	if cardWidth > 80 {
		cardWidth = 80
	}
	return cardWidth
}
