package catalog

import "context"

// SearchFilter narrows the cross-tenant discovery query. Zero values mean
// "no constraint"; price bounds are inclusive when their Set flag is true.
type SearchFilter struct {
	TenantIDs   []uint // resolved from a location filter; nil means all tenants
	Category    string
	MinPrice    float64
	MinPriceSet bool
	MaxPrice    float64
	MaxPriceSet bool
	SearchTerm  string // case-insensitive substring on product name
	Limit       int
}

// Repository persists products.
type Repository interface {
	// Create inserts a product and back-fills its database ID.
	Create(ctx context.Context, p *Product) error

	// CreateBatch inserts several products at once (starter catalog seed).
	CreateBatch(ctx context.Context, products []*Product) error

	// GetBySID returns the product with the given short ID, or nil.
	GetBySID(ctx context.Context, sid string) (*Product, error)

	// ListByUser returns the tenant's products, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*Product, error)

	// CountByUser returns how many products the tenant owns. Consulted
	// against the tier product limit before every insert.
	CountByUser(ctx context.Context, userID uint) (int, error)

	// Update persists owner-scoped mutations.
	Update(ctx context.Context, p *Product) error

	// Delete removes a product owned by the given user.
	Delete(ctx context.Context, sid string, userID uint) error

	// Search runs the capped cross-tenant discovery query.
	Search(ctx context.Context, filter SearchFilter) ([]*Product, error)
}
