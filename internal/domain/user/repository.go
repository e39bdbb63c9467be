package user

import "context"

// Repository persists accounts.
type Repository interface {
	// Create inserts a user and back-fills its database ID.
	Create(ctx context.Context, u *User) error

	// GetByEmail returns the user with the given (normalized) email, or nil.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns the user with the given database ID, or nil.
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetBySID returns the user with the given short ID, or nil.
	GetBySID(ctx context.Context, sid string) (*User, error)

	// Update persists mutations (last login).
	Update(ctx context.Context, u *User) error
}
