// Package aggregate folds scanned task folders into per-tier usage totals
// and a timestamped request log.
package aggregate

import (
	"time"

	"github.com/mwaldt/clinespend/internal/models"
	"github.com/mwaldt/clinespend/internal/scan"
)

// Aggregator accumulates one run's usage. It is owned by a single
// sequential pass and is not safe for concurrent use.
type Aggregator struct {
	totals     map[models.ModelTier]*models.TierTotals
	records    []models.RequestRecord
	timestamps []time.Time
	counters   models.ScanCounters
}

// New returns an aggregator with zeroed totals for every known tier.
func New() *Aggregator {
	totals := make(map[models.ModelTier]*models.TierTotals, len(models.AllTiers()))
	for _, tier := range models.AllTiers() {
		totals[tier] = &models.TierTotals{}
	}
	return &Aggregator{totals: totals}
}

// SkipFolder counts a folder that was excluded or unreadable.
func (a *Aggregator) SkipFolder() {
	a.counters.Skipped++
}

// AddFolder folds one qualifying folder's events into the totals. Event
// timestamps are tracked even for events whose payload did not decode, so
// the timestamp list can be a superset of the request log.
func (a *Aggregator) AddFolder(tier models.ModelTier, events []scan.Event) {
	a.counters.Processed++

	for _, ev := range events {
		var ts time.Time
		if ev.Timestamped() {
			ts = time.UnixMilli(ev.TimestampMs)
			a.timestamps = append(a.timestamps, ts)
		}
		if !ev.Valid {
			continue
		}

		a.counters.Entries++
		totals := a.totals[tier]
		totals.Tokens.Add(ev.Usage)
		totals.ReportedCost += ev.ReportedCost
		totals.Requests++

		if ev.Timestamped() {
			a.records = append(a.records, models.RequestRecord{
				Timestamp:    ts,
				Tokens:       ev.Usage,
				ReportedCost: ev.ReportedCost,
				Tier:         tier,
			})
		}
	}
}

// Counters returns the run counters accumulated so far.
func (a *Aggregator) Counters() models.ScanCounters {
	return a.counters
}

// fill copies the accumulated state into a report.
func (a *Aggregator) fill(report *models.Report) {
	report.Totals = a.totals
	report.Records = a.records
	report.Timestamps = a.timestamps
	report.Counters = a.counters

	for _, totals := range a.totals {
		report.CombinedTokens.Add(totals.Tokens)
		report.TotalReportedCost += totals.ReportedCost
		report.TotalRequests += totals.Requests
	}
}
