// Package models defines data structures and domain types.
package models

import "time"

// ScanCounters tracks folder and event outcomes for a run. The three
// counters are disjoint: a folder is either processed or skipped, and
// entries counts qualifying events inside processed folders.
type ScanCounters struct {
	Processed int
	Skipped   int
	Entries   int
}

// Report is the complete result of one scan over the tasks directory.
type Report struct {
	BasePath    string
	GeneratedAt time.Time

	// Totals has an entry for every tier up front so unused tiers report
	// zero rather than being absent.
	Totals     map[ModelTier]*TierTotals
	Records    []RequestRecord
	Timestamps []time.Time
	Counters   ScanCounters

	TierCosts         map[ModelTier]float64
	TotalCost         float64
	TotalReportedCost float64
	CombinedTokens    TokenUsage
	TotalRequests     int

	Period UsagePeriod
	Daily  DailySummary
}

// NewReport returns a report with zeroed totals for every known tier.
func NewReport(basePath string) *Report {
	totals := make(map[ModelTier]*TierTotals, len(AllTiers()))
	for _, tier := range AllTiers() {
		totals[tier] = &TierTotals{}
	}
	return &Report{
		BasePath:    basePath,
		GeneratedAt: time.Now(),
		Totals:      totals,
		TierCosts:   make(map[ModelTier]float64, len(AllTiers())),
	}
}

// ActiveTiers returns the tiers with at least one request, in display order.
func (r *Report) ActiveTiers() []ModelTier {
	var active []ModelTier
	for _, tier := range AllTiers() {
		if t, ok := r.Totals[tier]; ok && t.Requests > 0 {
			active = append(active, tier)
		}
	}
	return active
}

// HasUsage reports whether any qualifying request was found.
func (r *Report) HasUsage() bool {
	return r.TotalRequests > 0
}
