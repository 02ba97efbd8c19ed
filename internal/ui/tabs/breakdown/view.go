package breakdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwaldt/clinespend/internal/models"
	"github.com/mwaldt/clinespend/internal/ui/components"
	"github.com/mwaldt/clinespend/internal/ui/styles"
)

// View renders the breakdown tab.
func (m *Model) View() string {
	report := m.state.GetReport()

	if report == nil {
		return styles.DocStyle.
			Width(m.width).
			Height(m.height).
			Render(styles.HelpStyle.Render("Waiting for first scan..."))
	}

	if !report.HasUsage() {
		content := lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render("Model Breakdown"),
			"",
			styles.HelpStyle.Render("No usage data found."),
		)
		return styles.DocStyle.
			Width(m.width).
			Height(m.height).
			Render(content)
	}

	var sections []string
	sections = append(sections,
		m.renderHeader(report),
		m.renderCostTable(report),
		m.renderCostChart(report),
		m.renderSelectedDetail(report),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderHeader(report *models.Report) string {
	title := styles.TitleStyle.Render("Model Breakdown")
	subtitle := styles.HelpStyle.Render(fmt.Sprintf(
		"%d models used across %d requests", len(report.ActiveTiers()), report.TotalRequests))
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderCostTable(report *models.Report) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Cost per Model"), "")

	header := fmt.Sprintf("  %-20s %10s %14s %12s", "Model", "Requests", "Tokens", "Cost")
	rows = append(rows, styles.TableHeaderStyle.Render(header))

	tiers := report.ActiveTiers()
	for i, tier := range tiers {
		totals := report.Totals[tier]

		// Pad the raw name before styling so column alignment survives
		padded := fmt.Sprintf("%-20s", tier.DisplayName())
		name := styles.GetModelStyle(tier.String()).Render(padded)

		line := fmt.Sprintf("  %s %10d %14s %12s",
			name,
			totals.Requests,
			formatTokens(totals.Tokens.Total()),
			fmt.Sprintf("$%.4f", report.TierCosts[tier]),
		)

		if i == m.selectedIndex {
			line = styles.TableSelectedStyle.Render(">" + line[1:])
		}
		rows = append(rows, line)
	}

	rows = append(rows, "")
	totalLine := fmt.Sprintf("  %-20s %10d %14s %12s",
		"Total",
		report.TotalRequests,
		formatTokens(report.CombinedTokens.Total()),
		fmt.Sprintf("$%.4f", report.TotalCost),
	)
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render(totalLine))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderCostChart(report *models.Report) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Cost Distribution"), "")

	tiers := report.ActiveTiers()
	values := make([]float64, len(tiers))
	labels := make([]string, len(tiers))
	for i, tier := range tiers {
		values[i] = report.TierCosts[tier]
		labels[i] = tier.String()
	}

	chart := components.RenderBarChart(values, labels, max(cardWidth-8, 30))
	for _, line := range strings.Split(chart, "\n") {
		rows = append(rows, "  "+line)
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderSelectedDetail(report *models.Report) string {
	tiers := report.ActiveTiers()
	if len(tiers) == 0 {
		return ""
	}

	idx := m.selectedIndex
	if idx >= len(tiers) {
		idx = len(tiers) - 1
	}
	tier := tiers[idx]
	totals := report.Totals[tier]

	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render(tier.DisplayName()), "")

	rows = append(rows, m.renderRow("Requests", fmt.Sprintf("%d", totals.Requests)))
	rows = append(rows, m.renderRow("Input Tokens", formatTokens(totals.Tokens.Input)))
	rows = append(rows, m.renderRow("Output Tokens", formatTokens(totals.Tokens.Output)))
	rows = append(rows, m.renderRow("Cache Writes", formatTokens(totals.Tokens.CacheWrites)))
	rows = append(rows, m.renderRow("Cache Reads", formatTokens(totals.Tokens.CacheReads)))
	rows = append(rows, "")
	rows = append(rows, m.renderRow("Computed Cost",
		styles.CostStyle.Render(fmt.Sprintf("$%.4f", report.TierCosts[tier]))))
	rows = append(rows, m.renderRow("Reported Cost", fmt.Sprintf("$%.4f", totals.ReportedCost)))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(16).
		Foreground(styles.TextMuted)

	return labelStyle.Render(label+":") + " " + value
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}
	if cardWidth > 90 {
		cardWidth = 90
	}
	return cardWidth
}

// formatTokens renders a token count with thousands separators.
func formatTokens(n int64) string {
	if n < 0 {
		return "-" + formatTokens(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatTokens(n/1000) + fmt.Sprintf(",%03d", n%1000)
}
