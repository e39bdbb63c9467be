package analytics

import (
	"context"
	"time"
)

// Stats are the dashboard counters over a rolling window.
type Stats struct {
	Visits int
	Clicks int
}

// Repository persists analytics events. Writes are best-effort from the
// caller's point of view: failures are logged at the call site and never
// surfaced to visitors.
type Repository interface {
	// Record inserts one event.
	Record(ctx context.Context, e *Event) error

	// StatsSince counts views and clicks for the profile at or after the
	// given instant.
	StatsSince(ctx context.Context, profileID uint, since time.Time) (Stats, error)
}
