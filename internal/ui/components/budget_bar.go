// Package components provides reusable UI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwaldt/clinespend/internal/logger"
	"github.com/mwaldt/clinespend/internal/ui/styles"
)

// BudgetBar renders projected monthly spend against the configured budget.
type BudgetBar struct {
	progress progress.Model
}

// NewBudgetBar creates a budget bar with gradient colors. The gradient runs
// green to red since a fuller bar means more of the budget is spent.
func NewBudgetBar() BudgetBar {
	p := progress.New(
		progress.WithScaledGradient("#51cf66", "#ff6b6b"),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return BudgetBar{progress: p}
}

// Init initializes the progress bar model.
func (b BudgetBar) Init() tea.Cmd {
	return nil
}

// Update handles progress bar animation messages.
func (b BudgetBar) Update(msg tea.Msg) (BudgetBar, tea.Cmd) {
	model, cmd := b.progress.Update(msg)
	b.progress = model.(progress.Model)
	return b, cmd
}

// SetWidth sets the progress bar width.
func (b *BudgetBar) SetWidth(width int) {
	b.progress.Width = width
}

// View renders the budget bar with the spent amount and percentage.
func (b BudgetBar) View(spent, budget float64, width int) string {
	if budget <= 0 {
		return styles.HelpStyle.Render("No monthly budget configured")
	}

	ratio := spent / budget
	display := ratio
	if display > 1 {
		display = 1
	}

	barWidth := width - 30 // Reserve space for label and percentage
	if barWidth < 10 {
		barWidth = 10
	}
	b.progress.Width = barWidth

	bar := b.progress.ViewAs(display)

	percentStyle := styles.GetBudgetStyle(ratio)
	percentStr := percentStyle.Width(7).Align(lipgloss.Right).Render(fmt.Sprintf("%.0f%%", ratio*100))

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(18).
		Render(fmt.Sprintf("$%.2f / $%.2f", spent, budget))

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStr,
		bar,
		" ",
		percentStr,
	)
}

// RenderGradientBar renders just the bar characters with gradient colors.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#51cf66", "#ff6b6b", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// SimpleBudgetBar renders a plain ASCII budget bar with gradient colors.
func SimpleBudgetBar(percent float64, label string, width int) string {
	labelWidth := len(label) + 1
	percentWidth := 6
	barWidth := width - labelWidth - percentWidth - 4

	if barWidth < 5 {
		barWidth = 5
	}

	bar := RenderGradientBar(percent, barWidth)

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(label)

	percentStr := styles.GetBudgetStyle(percent / 100).
		Width(percentWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%.0f%%", percent))

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, percentStr)
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
