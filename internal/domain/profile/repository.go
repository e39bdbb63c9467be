package profile

import "context"

// Summary is the denormalized profile snapshot embedded in discovery
// results and public menu payloads.
type Summary struct {
	UserID       uint
	Name         string
	Slug         string
	City         string
	Neighborhood string
	Phone        string
	LogoURL      string
}

// Repository persists business profiles.
type Repository interface {
	// Create inserts a profile and back-fills its database ID. Returns a
	// conflict error when the tenant already has a profile or the slug is
	// taken.
	Create(ctx context.Context, p *BusinessProfile) error

	// GetByUserID returns the tenant's profile, or nil when none exists.
	GetByUserID(ctx context.Context, userID uint) (*BusinessProfile, error)

	// GetBySlug resolves a public slug, or nil when unknown.
	GetBySlug(ctx context.Context, slug string) (*BusinessProfile, error)

	// Update persists owner-scoped mutations.
	Update(ctx context.Context, p *BusinessProfile) error

	// ResolveTenantsByLocation returns the user IDs of profiles whose city
	// or neighborhood contains the location term, case-insensitively.
	// Implementations without a neighborhood column match city only.
	ResolveTenantsByLocation(ctx context.Context, location string) ([]uint, error)

	// SummariesByUserIDs batch-fetches profile snapshots for the discovery
	// join.
	SummariesByUserIDs(ctx context.Context, userIDs []uint) (map[uint]Summary, error)
}
