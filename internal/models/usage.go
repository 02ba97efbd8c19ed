// Package models defines data structures and domain types.
package models

import "time"

// TokenUsage holds the four billable token counters of a request or an
// aggregate of requests.
type TokenUsage struct {
	Input       int64
	Output      int64
	CacheWrites int64
	CacheReads  int64
}

// Add accumulates another usage into this one.
func (u *TokenUsage) Add(other TokenUsage) {
	u.Input += other.Input
	u.Output += other.Output
	u.CacheWrites += other.CacheWrites
	u.CacheReads += other.CacheReads
}

// Total returns input plus output tokens, the figure shown as a day's or
// tier's token volume.
func (u TokenUsage) Total() int64 {
	return u.Input + u.Output
}

// CacheTotal returns cache writes plus cache reads.
func (u TokenUsage) CacheTotal() int64 {
	return u.CacheWrites + u.CacheReads
}

// IsZero reports whether all four counters are zero.
func (u TokenUsage) IsZero() bool {
	return u.Input == 0 && u.Output == 0 && u.CacheWrites == 0 && u.CacheReads == 0
}

// TierTotals accumulates usage for a single model tier across a run.
type TierTotals struct {
	Tokens       TokenUsage
	ReportedCost float64
	Requests     int
}

// RequestRecord is one timestamped API request attributed to a tier. Records
// are immutable once appended to the run's log.
type RequestRecord struct {
	Timestamp    time.Time
	Tokens       TokenUsage
	ReportedCost float64
	Tier         ModelTier
}
