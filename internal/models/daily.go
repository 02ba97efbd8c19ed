// Package models defines data structures and domain types.
package models

import "time"

// DailyStat aggregates usage over one local calendar date.
type DailyStat struct {
	Date     time.Time
	Tokens   TokenUsage
	Cost     float64
	Requests int
}

// DailySummary holds per-day stats plus cross-day aggregates. A zero
// ActiveDays means no timestamped requests were seen.
type DailySummary struct {
	Days []DailyStat

	ActiveDays int

	AvgCost float64
	MaxCost float64
	MinCost float64

	AvgTokens float64
	MaxTokens int64

	AvgRequests float64
	MaxRequests int

	// PeakVariationPct is (max-avg)/avg*100 of daily cost. Only meaningful
	// when HasPeakVariation is set, since a zero average has no peak ratio.
	PeakVariationPct float64
	HasPeakVariation bool
}

// HasData reports whether any active day was recorded.
func (d DailySummary) HasData() bool {
	return d.ActiveDays > 0
}

// UsagePeriod describes the observed activity span and the monthly average
// spend normalized over it.
type UsagePeriod struct {
	HasData        bool
	FirstDate      time.Time
	LastDate       time.Time
	SpanDays       int
	MonthlyAverage float64
	DateRange      string
}
