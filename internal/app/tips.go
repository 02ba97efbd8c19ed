package app

import "math/rand"

// usageTips is shown one at a time in the overview tab, rotated on every
// scan.
var usageTips = []string{
	"Cache reads are billed at a tenth of the input rate. Long-running tasks benefit the most.",
	"Opus is roughly 5x the price of Sonnet per token. Reserve it for the hard problems.",
	"Haiku handles quick edits and lookups at a fraction of the cost.",
	"Cache writes cost 25% more than plain input tokens, but pay off after the first reuse.",
	"Starting a fresh task resets the prompt cache. Keep related work in one task.",
	"Large daily cost swings usually trace back to a few token-heavy tasks. Check the daily view.",
	"The monthly average normalizes to a 30.44 day month, so short bursts read high at first.",
}

// randomTip returns one tip at random.
func randomTip() string {
	return usageTips[rand.Intn(len(usageTips))]
}
