// Package biztime centralizes the time arithmetic used by quota and
// analytics queries so month and window boundaries are computed one way.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfMonth returns midnight UTC on the first day of t's month.
// Generation quotas are counted per calendar month from this boundary.
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysAgo returns the instant n*24h before now. Dashboard counters use a
// rolling 7-day window, not calendar days.
func DaysAgo(n int) time.Time {
	return NowUTC().Add(-time.Duration(n) * 24 * time.Hour)
}
