package report

import (
	"strings"
	"testing"
	"time"

	"github.com/mwaldt/clinespend/internal/models"
)

func testReport() *models.Report {
	r := models.NewReport("/tmp/tasks")
	r.Counters = models.ScanCounters{Processed: 2, Skipped: 1, Entries: 3}
	r.Totals[models.TierOpus4] = &models.TierTotals{
		Tokens:       models.TokenUsage{Input: 2000, Output: 1000, CacheReads: 500},
		ReportedCost: 0.11,
		Requests:     2,
	}
	r.TierCosts[models.TierOpus4] = 0.105
	r.TotalCost = 0.105
	r.TotalReportedCost = 0.11
	r.CombinedTokens = models.TokenUsage{Input: 2000, Output: 1000, CacheReads: 500}
	r.TotalRequests = 2
	r.Period = models.UsagePeriod{
		HasData:        true,
		SpanDays:       9,
		MonthlyAverage: 0.36,
		DateRange:      "2025-06-01 to 2025-06-10",
	}
	r.Daily = models.DailySummary{
		Days: []models.DailyStat{
			{
				Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				Tokens:   models.TokenUsage{Input: 2000, Output: 1000},
				Cost:     0.105,
				Requests: 2,
			},
		},
		ActiveDays: 1,
		AvgCost:    0.105,
		MaxCost:    0.105,
		MinCost:    0.105,
	}
	return r
}

func TestRender(t *testing.T) {
	var b strings.Builder
	Render(&b, testReport())
	out := b.String()

	checks := []string{
		"Cline Usage Report",
		"/tmp/tasks",
		"Folders processed: 2, skipped: 1, usage entries: 3",
		"Claude Opus 4",
		"$0.1050",
		"Total cost:      $0.1050",
		"Reported cost:   $0.1100",
		"Input tokens:    2,000",
		"Projected spend: $0.36 / month",
		"2025-06-01 to 2025-06-10",
		"Active days:     1",
		"2025-06-01",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRender_NoUsage(t *testing.T) {
	var b strings.Builder
	Render(&b, models.NewReport("/empty"))
	out := b.String()

	if !strings.Contains(out, "No usage data found.") {
		t.Error("empty report should say no usage data")
	}
	if strings.Contains(out, "Cost per Model") {
		t.Error("empty report should not render the model table")
	}
}

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{1000, "1,000"},
		{123456789, "123,456,789"},
	}
	for _, tt := range tests {
		if got := formatTokens(tt.in); got != tt.want {
			t.Errorf("formatTokens(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
