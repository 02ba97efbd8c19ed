package overview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwaldt/clinespend/internal/models"
	"github.com/mwaldt/clinespend/internal/ui/styles"
)

// View renders the overview tab.
func (m *Model) View() string {
	report := m.state.GetReport()

	if report == nil {
		return m.renderLoading()
	}

	var sections []string
	sections = append(sections, m.renderTitle(report))

	if err := m.state.GetScanError(); err != nil {
		sections = append(sections, m.renderScanError(err))
	}

	if !report.HasUsage() {
		sections = append(sections, m.renderEmpty())
	} else {
		sections = append(sections,
			m.renderTotalsCard(report),
			m.renderMonthlyCard(report),
		)
	}

	if tip := m.state.GetTip(); tip != "" {
		sections = append(sections, m.renderTip(tip))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderLoading() string {
	content := m.spinner.ViewWithLabel()
	return styles.CenterBoth(content, m.width, m.height)
}

func (m *Model) renderTitle(report *models.Report) string {
	title := styles.TitleStyle.Render("Cline Usage Overview")
	subtitle := styles.HelpStyle.Render(report.BasePath)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderScanError(err error) string {
	cardWidth := m.cardWidth()
	content := fmt.Sprintf("%s %v",
		styles.ErrorTextStyle.Render("Scan failed:"),
		err,
	)
	return styles.CardStyle.Width(cardWidth).
		BorderForeground(styles.Error).
		Render(content)
}

func (m *Model) renderEmpty() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.HelpStyle.Render("No usage data found."),
		styles.HelpStyle.Render("Task folders appear here after Cline makes API requests."),
		"",
	)
}

func (m *Model) renderTotalsCard(report *models.Report) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Totals"), "")

	rows = append(rows, m.renderRow("Total Cost",
		styles.CostStyle.Render(fmt.Sprintf("$%.4f", report.TotalCost))))
	rows = append(rows, m.renderRow("Reported Cost",
		fmt.Sprintf("$%.4f", report.TotalReportedCost)))
	rows = append(rows, m.renderRow("Requests",
		fmt.Sprintf("%d", report.TotalRequests)))
	rows = append(rows, "")

	usage := report.CombinedTokens
	rows = append(rows, m.renderRow("Input Tokens", formatTokens(usage.Input)))
	rows = append(rows, m.renderRow("Output Tokens", formatTokens(usage.Output)))
	rows = append(rows, m.renderRow("Cache Writes", formatTokens(usage.CacheWrites)))
	rows = append(rows, m.renderRow("Cache Reads", formatTokens(usage.CacheReads)))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderMonthlyCard(report *models.Report) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Monthly Average"), "")

	period := report.Period
	if !period.HasData {
		rows = append(rows, styles.HelpStyle.Render(period.DateRange))
	} else {
		rows = append(rows, m.renderRow("Projected Spend",
			styles.CostStyle.Render(fmt.Sprintf("$%.2f / month", period.MonthlyAverage))))
		rows = append(rows, m.renderRow("Usage Period", period.DateRange))
		rows = append(rows, m.renderRow("Span", fmt.Sprintf("%d days", period.SpanDays)))

		if budget := m.state.GetBudget(); budget > 0 {
			rows = append(rows, "")
			rows = append(rows, m.budgetBar.View(period.MonthlyAverage, budget, cardWidth-6))
		}
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderTip(tip string) string {
	return styles.TipStyle.Render("Tip: " + tip)
}

func (m *Model) renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(16).
		Foreground(styles.TextMuted)

	return labelStyle.Render(label+":") + " " + value
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
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
