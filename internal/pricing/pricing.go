// Package pricing maps model tiers to per-token rates and converts token
// usage into calculated cost.
package pricing

import "github.com/mwaldt/clinespend/internal/models"

// RateCard holds USD prices per one million tokens for each of the four
// billable dimensions.
type RateCard struct {
	Input      float64
	Output     float64
	CacheWrite float64
	CacheRead  float64
}

// Table maps every model tier to its rate card. Lookups are total: the
// table carries a card for each tier including the fallback.
type Table map[models.ModelTier]RateCard

// DefaultTable returns the published Claude API rates. Unrecognized models
// are billed at the Sonnet rate.
func DefaultTable() Table {
	sonnet := RateCard{Input: 3.00, Output: 15.00, CacheWrite: 3.75, CacheRead: 0.30}
	return Table{
		models.TierSonnet4:  sonnet,
		models.TierOpus4:    {Input: 15.00, Output: 75.00, CacheWrite: 18.75, CacheRead: 1.50},
		models.TierSonnet37: sonnet,
		models.TierSonnet35: sonnet,
		models.TierHaiku35:  {Input: 0.80, Output: 4.00, CacheWrite: 1.00, CacheRead: 0.08},
		models.TierOther:    sonnet,
	}
}

// Card returns the rate card for a tier, falling back to the catch-all
// tier's card when the tier is unknown to the table.
func (t Table) Card(tier models.ModelTier) RateCard {
	if card, ok := t[tier]; ok {
		return card
	}
	return t[models.TierOther]
}

// Cost converts a token usage into USD at the given rates. No rounding is
// applied here; formatting is a presentation concern.
func Cost(usage models.TokenUsage, card RateCard) float64 {
	return float64(usage.Input)/1e6*card.Input +
		float64(usage.Output)/1e6*card.Output +
		float64(usage.CacheWrites)/1e6*card.CacheWrite +
		float64(usage.CacheReads)/1e6*card.CacheRead
}

// CostFor converts a token usage into USD at the tier's rates.
func (t Table) CostFor(usage models.TokenUsage, tier models.ModelTier) float64 {
	return Cost(usage, t.Card(tier))
}

// TierCosts computes the calculated cost per tier and the grand total. The
// per-tier map has an entry for every tier in totals, zero included, so the
// sum of its values always equals the returned total.
func (t Table) TierCosts(totals map[models.ModelTier]*models.TierTotals) (map[models.ModelTier]float64, float64) {
	costs := make(map[models.ModelTier]float64, len(totals))
	var grand float64
	for tier, tt := range totals {
		c := t.CostFor(tt.Tokens, tier)
		costs[tier] = c
		grand += c
	}
	return costs, grand
}
