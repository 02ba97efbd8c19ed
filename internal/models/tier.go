// Package models defines data structures and domain types.
package models

// ModelTier identifies the pricing tier a task's model belongs to.
type ModelTier int

const (
	// TierSonnet4 covers claude-sonnet-4 model ids.
	TierSonnet4 ModelTier = iota
	// TierOpus4 covers claude-opus-4 model ids.
	TierOpus4
	// TierSonnet37 covers claude-3-7-sonnet model ids.
	TierSonnet37
	// TierSonnet35 covers claude-3-5-sonnet model ids.
	TierSonnet35
	// TierHaiku35 covers claude-3-5-haiku model ids.
	TierHaiku35
	// TierOther is the fallback for unrecognized model ids.
	TierOther
)

// AllTiers lists every tier in display order.
func AllTiers() []ModelTier {
	return []ModelTier{
		TierSonnet4,
		TierOpus4,
		TierSonnet37,
		TierSonnet35,
		TierHaiku35,
		TierOther,
	}
}

// String returns the canonical identifier for a tier.
func (t ModelTier) String() string {
	switch t {
	case TierSonnet4:
		return "claude-sonnet-4"
	case TierOpus4:
		return "claude-opus-4"
	case TierSonnet37:
		return "claude-3-7-sonnet"
	case TierSonnet35:
		return "claude-3-5-sonnet"
	case TierHaiku35:
		return "claude-3-5-haiku"
	case TierOther:
		return "other"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for a tier.
func (t ModelTier) DisplayName() string {
	switch t {
	case TierSonnet4:
		return "Claude Sonnet 4"
	case TierOpus4:
		return "Claude Opus 4"
	case TierSonnet37:
		return "Claude 3.7 Sonnet"
	case TierSonnet35:
		return "Claude 3.5 Sonnet"
	case TierHaiku35:
		return "Claude 3.5 Haiku"
	case TierOther:
		return "Other Models"
	default:
		return "Unknown"
	}
}
