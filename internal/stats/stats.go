// Package stats derives calendar statistics from a run's request log.
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mwaldt/clinespend/internal/models"
	"github.com/mwaldt/clinespend/internal/pricing"
)

// daysPerMonth is the average Gregorian month length used to normalize a
// spend span into a monthly figure.
const daysPerMonth = 30.44

const dateFormat = "2006-01-02"

// dateOf truncates a timestamp to its calendar date in loc.
func dateOf(ts time.Time, loc *time.Location) time.Time {
	y, m, d := ts.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Period computes the observed activity span and monthly average spend.
// With no timestamps it returns a no-data period rather than an error.
// A single active day is modeled as representative of a 30-day month.
func Period(totalCost float64, timestamps []time.Time, loc *time.Location) models.UsagePeriod {
	if len(timestamps) == 0 {
		return models.UsagePeriod{DateRange: "No usage data found"}
	}

	first, last := timestamps[0], timestamps[0]
	for _, ts := range timestamps[1:] {
		if ts.Before(first) {
			first = ts
		}
		if ts.After(last) {
			last = ts
		}
	}

	firstDay := dateOf(first, loc)
	lastDay := dateOf(last, loc)
	span := int(math.Round(lastDay.Sub(firstDay).Hours() / 24))

	period := models.UsagePeriod{
		HasData:   true,
		FirstDate: firstDay,
		LastDate:  lastDay,
		SpanDays:  span,
	}

	if span == 0 {
		period.MonthlyAverage = totalCost * 30
		period.DateRange = "All usage on " + firstDay.Format(dateFormat)
		return period
	}

	period.MonthlyAverage = totalCost / (float64(span) / daysPerMonth)
	period.DateRange = fmt.Sprintf("%s to %s", firstDay.Format(dateFormat), lastDay.Format(dateFormat))
	return period
}

// Daily groups the request log by local calendar date and summarizes the
// per-day values. Daily cost is recomputed from the pricing table so it
// stays consistent with the tier-level totals; the reported cost field is
// never used here. An empty log yields an empty summary.
func Daily(records []models.RequestRecord, table pricing.Table, loc *time.Location) models.DailySummary {
	if len(records) == 0 {
		return models.DailySummary{}
	}

	byDay := make(map[string]*models.DailyStat)
	for _, rec := range records {
		day := dateOf(rec.Timestamp, loc)
		key := day.Format(dateFormat)
		stat, ok := byDay[key]
		if !ok {
			stat = &models.DailyStat{Date: day}
			byDay[key] = stat
		}
		stat.Tokens.Add(rec.Tokens)
		stat.Cost += table.CostFor(rec.Tokens, rec.Tier)
		stat.Requests++
	}

	days := make([]models.DailyStat, 0, len(byDay))
	for _, stat := range byDay {
		days = append(days, *stat)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return summarize(days)
}

func summarize(days []models.DailyStat) models.DailySummary {
	summary := models.DailySummary{
		Days:       days,
		ActiveDays: len(days),
		MinCost:    days[0].Cost,
	}

	var totalCost, totalTokens, totalRequests float64
	for _, day := range days {
		totalCost += day.Cost
		if day.Cost > summary.MaxCost {
			summary.MaxCost = day.Cost
		}
		if day.Cost < summary.MinCost {
			summary.MinCost = day.Cost
		}

		tokens := day.Tokens.Total()
		totalTokens += float64(tokens)
		if tokens > summary.MaxTokens {
			summary.MaxTokens = tokens
		}

		totalRequests += float64(day.Requests)
		if day.Requests > summary.MaxRequests {
			summary.MaxRequests = day.Requests
		}
	}

	n := float64(len(days))
	summary.AvgCost = totalCost / n
	summary.AvgTokens = totalTokens / n
	summary.AvgRequests = totalRequests / n

	if summary.AvgCost > 0 {
		summary.PeakVariationPct = (summary.MaxCost - summary.AvgCost) / summary.AvgCost * 100
		summary.HasPeakVariation = true
	}
	return summary
}
