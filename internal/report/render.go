// Package report renders a scan result as plain text for one-shot runs.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mwaldt/clinespend/internal/models"
)

// Render writes a full usage report to w.
func Render(w io.Writer, r *models.Report) {
	fmt.Fprintln(w, "Cline Usage Report")
	fmt.Fprintln(w, "==================")
	fmt.Fprintf(w, "Tasks directory: %s\n", r.BasePath)
	fmt.Fprintf(w, "Generated:       %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w)

	renderScanSummary(w, r)

	if !r.HasUsage() {
		fmt.Fprintln(w, "No usage data found.")
		return
	}

	renderModelTable(w, r)
	renderTotals(w, r)
	renderPeriod(w, r)
	renderDaily(w, r)
}

func renderScanSummary(w io.Writer, r *models.Report) {
	fmt.Fprintf(w, "Folders processed: %d, skipped: %d, usage entries: %d\n\n",
		r.Counters.Processed, r.Counters.Skipped, r.Counters.Entries)
}

func renderModelTable(w io.Writer, r *models.Report) {
	fmt.Fprintln(w, "Cost per Model")
	fmt.Fprintln(w, "--------------")
	fmt.Fprintf(w, "%-20s %10s %14s %14s %12s\n", "Model", "Requests", "Tokens", "Cache", "Cost")

	for _, tier := range r.ActiveTiers() {
		totals := r.Totals[tier]
		fmt.Fprintf(w, "%-20s %10d %14s %14s %12s\n",
			tier.DisplayName(),
			totals.Requests,
			formatTokens(totals.Tokens.Total()),
			formatTokens(totals.Tokens.CacheTotal()),
			fmt.Sprintf("$%.4f", r.TierCosts[tier]),
		)
	}
	fmt.Fprintln(w)
}

func renderTotals(w io.Writer, r *models.Report) {
	fmt.Fprintln(w, "Totals")
	fmt.Fprintln(w, "------")
	fmt.Fprintf(w, "Total cost:      $%.4f\n", r.TotalCost)
	fmt.Fprintf(w, "Reported cost:   $%.4f\n", r.TotalReportedCost)
	fmt.Fprintf(w, "Requests:        %d\n", r.TotalRequests)
	fmt.Fprintf(w, "Input tokens:    %s\n", formatTokens(r.CombinedTokens.Input))
	fmt.Fprintf(w, "Output tokens:   %s\n", formatTokens(r.CombinedTokens.Output))
	fmt.Fprintf(w, "Cache writes:    %s\n", formatTokens(r.CombinedTokens.CacheWrites))
	fmt.Fprintf(w, "Cache reads:     %s\n", formatTokens(r.CombinedTokens.CacheReads))
	fmt.Fprintln(w)
}

func renderPeriod(w io.Writer, r *models.Report) {
	fmt.Fprintln(w, "Monthly Average")
	fmt.Fprintln(w, "---------------")
	if !r.Period.HasData {
		fmt.Fprintln(w, r.Period.DateRange)
	} else {
		fmt.Fprintf(w, "Projected spend: $%.2f / month\n", r.Period.MonthlyAverage)
		fmt.Fprintf(w, "Usage period:    %s (%d days)\n", r.Period.DateRange, r.Period.SpanDays)
	}
	fmt.Fprintln(w)
}

func renderDaily(w io.Writer, r *models.Report) {
	if !r.Daily.HasData() {
		return
	}

	fmt.Fprintln(w, "Daily Statistics")
	fmt.Fprintln(w, "----------------")
	fmt.Fprintf(w, "Active days:     %d\n", r.Daily.ActiveDays)
	fmt.Fprintf(w, "Avg daily cost:  $%.4f\n", r.Daily.AvgCost)
	fmt.Fprintf(w, "Max daily cost:  $%.4f\n", r.Daily.MaxCost)
	fmt.Fprintf(w, "Min daily cost:  $%.4f\n", r.Daily.MinCost)
	fmt.Fprintf(w, "Avg tokens/day:  %.0f\n", r.Daily.AvgTokens)
	fmt.Fprintf(w, "Avg requests/day: %.1f\n", r.Daily.AvgRequests)
	if r.Daily.HasPeakVariation {
		fmt.Fprintf(w, "Peak variation:  %.1f%% above average\n", r.Daily.PeakVariationPct)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-12s %12s %12s %10s\n", "Date", "Cost", "Tokens", "Requests")
	for _, d := range r.Daily.Days {
		fmt.Fprintf(w, "%-12s %12s %12d %10d\n",
			d.Date.Format("2006-01-02"),
			fmt.Sprintf("$%.4f", d.Cost),
			d.Tokens.Total(),
			d.Requests,
		)
	}
}

// formatTokens renders a token count with thousands separators.
func formatTokens(n int64) string {
	if n < 0 {
		return "-" + formatTokens(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
