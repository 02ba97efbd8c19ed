// Package models defines data structures and domain types.
package models

// TimeRange represents the selected daily-view time range.
type TimeRange int

const (
	// TimeRange7Days shows the last 7 calendar days.
	TimeRange7Days TimeRange = iota
	// TimeRange30Days shows the last 30 calendar days.
	TimeRange30Days
	// TimeRange90Days shows the last 90 calendar days.
	TimeRange90Days
	// TimeRangeAllTime shows every recorded day.
	TimeRangeAllTime
)

// String returns the display name for a time range.
func (t TimeRange) String() string {
	switch t {
	case TimeRange7Days:
		return "7 Days"
	case TimeRange30Days:
		return "30 Days"
	case TimeRange90Days:
		return "90 Days"
	case TimeRangeAllTime:
		return "All Time"
	default:
		return "Unknown"
	}
}

// Days returns the number of days for the time range (0 = unlimited).
func (t TimeRange) Days() int {
	switch t {
	case TimeRange7Days:
		return 7
	case TimeRange30Days:
		return 30
	case TimeRange90Days:
		return 90
	case TimeRangeAllTime:
		return 0
	default:
		return 30
	}
}

// Next cycles to the next time range.
func (t TimeRange) Next() TimeRange {
	return (t + 1) % 4
}
