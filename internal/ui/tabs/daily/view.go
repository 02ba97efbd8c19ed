package daily

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwaldt/clinespend/internal/models"
	"github.com/mwaldt/clinespend/internal/ui/components"
	"github.com/mwaldt/clinespend/internal/ui/styles"
)

// View renders the daily tab.
func (m *Model) View() string {
	report := m.state.GetReport()

	if report == nil {
		return styles.DocStyle.
			Width(m.width).
			Height(m.height).
			Render(styles.HelpStyle.Render("Waiting for first scan..."))
	}

	if !report.Daily.HasData() {
		return m.renderEmpty()
	}

	var sections []string
	sections = append(sections,
		m.renderHeader(report),
		m.renderCostChart(),
		m.renderAggregatesCard(report.Daily),
		m.renderRecentDays(),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Daily Statistics"),
		"",
		styles.HelpStyle.Render("No timestamped requests recorded yet."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader(report *models.Report) string {
	title := styles.TitleStyle.Render("Daily Statistics")

	rangeStyle := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Primary)

	rangeIndicator := rangeStyle.Render(fmt.Sprintf("[t] %s", m.timeRange.String()))

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", rangeIndicator)

	subtitle := styles.HelpStyle.Render(fmt.Sprintf(
		"%d active days, %s", report.Daily.ActiveDays, report.Period.DateRange))

	return lipgloss.JoinVertical(lipgloss.Left, header, subtitle, "")
}

func (m *Model) renderCostChart() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Daily Cost"), "")

	days := m.visibleDays()
	if len(days) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No data in this range"))
	} else {
		costs := make([]float64, len(days))
		for i, d := range days {
			costs[i] = d.Cost
		}

		chartWidth := max(cardWidth-12, 30)
		chartHeight := 8

		caption := fmt.Sprintf("%s to %s ($/day)",
			days[0].Date.Format("Jan 2"),
			days[len(days)-1].Date.Format("Jan 2"),
		)

		chart := components.RenderLineChart(costs, chartWidth, chartHeight, caption)
		for _, line := range strings.Split(chart, "\n") {
			rows = append(rows, "  "+line)
		}

		rows = append(rows, "")
		rows = append(rows, "  "+components.RenderColoredSparkline(costs, min(len(costs), chartWidth)))
	}

	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAggregatesCard(daily models.DailySummary) string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Aggregates"), "")

	rows = append(rows, m.renderRow("Avg Daily Cost",
		styles.CostStyle.Render(fmt.Sprintf("$%.4f", daily.AvgCost))))
	rows = append(rows, m.renderRow("Max Daily Cost", fmt.Sprintf("$%.4f", daily.MaxCost)))
	rows = append(rows, m.renderRow("Min Daily Cost", fmt.Sprintf("$%.4f", daily.MinCost)))
	rows = append(rows, "")
	rows = append(rows, m.renderRow("Avg Tokens/Day", fmt.Sprintf("%.0f", daily.AvgTokens)))
	rows = append(rows, m.renderRow("Max Tokens/Day", fmt.Sprintf("%d", daily.MaxTokens)))
	rows = append(rows, m.renderRow("Avg Requests/Day", fmt.Sprintf("%.1f", daily.AvgRequests)))
	rows = append(rows, m.renderRow("Max Requests/Day", fmt.Sprintf("%d", daily.MaxRequests)))

	if daily.HasPeakVariation {
		rows = append(rows, "")
		style := styles.InfoTextStyle
		if daily.PeakVariationPct > 100 {
			style = styles.WarningTextStyle
		}
		rows = append(rows, m.renderRow("Peak Variation",
			style.Render(fmt.Sprintf("%.1f%% above average", daily.PeakVariationPct))))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRecentDays() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Recent Days"), "")

	header := fmt.Sprintf("  %-12s %12s %12s %10s", "Date", "Cost", "Tokens", "Requests")
	rows = append(rows, styles.TableHeaderStyle.Render(header))

	days := m.visibleDays()

	// Newest first, at most 14 rows
	shown := 0
	for i := len(days) - 1; i >= 0 && shown < 14; i-- {
		d := days[i]
		rows = append(rows, fmt.Sprintf("  %-12s %12s %12d %10d",
			d.Date.Format("2006-01-02"),
			fmt.Sprintf("$%.4f", d.Cost),
			d.Tokens.Total(),
			d.Requests,
		))
		shown++
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
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
