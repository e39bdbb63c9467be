package content

import (
	"context"
	"time"
)

// Repository persists the generation history. The history is append-only;
// items are never updated or deleted once saved.
type Repository interface {
	// Save inserts one generated item and back-fills its database ID.
	Save(ctx context.Context, item *GeneratedContent) error

	// CountItemsSince returns how many items the user saved at or after
	// the given instant. Quota checks pass the start of the current month.
	CountItemsSince(ctx context.Context, userID uint, since time.Time) (int, error)

	// ListByUser returns the newest items first, capped at limit.
	ListByUser(ctx context.Context, userID uint, limit int) ([]*GeneratedContent, error)
}
