// Package user models the account identity behind a tenant. Authentication
// is passwordless: a user row is created the first time an email requests a
// login link.
package user

import (
	"fmt"
	"strings"
	"time"

	"chefviral/internal/shared/id"
	"chefviral/internal/shared/utils"
)

// User is the account aggregate.
type User struct {
	dbID        uint
	sid         string
	email       string
	lastLoginAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewUser creates an account for a normalized email address.
func NewUser(email string) (*User, error) {
	email = NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}
	now := time.Now().UTC()
	return &User{
		sid:       id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength),
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(dbID uint, sid, email string, lastLoginAt *time.Time, createdAt, updatedAt time.Time) (*User, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return &User{
		dbID:        dbID,
		sid:         sid,
		email:       email,
		lastLoginAt: lastLoginAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) DBID() uint              { return u.dbID }
func (u *User) SID() string             { return u.sid }
func (u *User) Email() string           { return u.email }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

// SetDBID records the database identity after the first insert.
func (u *User) SetDBID(dbID uint) {
	if u.dbID == 0 {
		u.dbID = dbID
	}
}

// TouchLogin records a successful login-link verification.
func (u *User) TouchLogin() {
	now := time.Now().UTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}
