// Package catalog models the tenant's product catalog.
package catalog

import (
	"fmt"
	"math"
	"time"

	"chefviral/internal/shared/id"
)

// Product is one catalog item owned by exactly one tenant.
type Product struct {
	dbID        uint
	sid         string
	userID      uint
	name        string
	description string
	price       float64
	category    string
	imageURL    string
	popular     bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProduct creates a product. Price is a non-negative decimal, rounded to
// two places (BRL cents).
func NewProduct(userID uint, name, description string, price float64, category string) (*Product, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if category == "" {
		category = "Outros"
	}

	now := time.Now().UTC()
	return &Product{
		sid:         id.MustGenerateWithPrefix(id.PrefixProduct, id.DefaultLength),
		userID:      userID,
		name:        name,
		description: description,
		price:       roundPrice(price),
		category:    category,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProduct rebuilds a product from persistence.
func ReconstructProduct(
	dbID uint,
	sid string,
	userID uint,
	name, description string,
	price float64,
	category, imageURL string,
	popular bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	return &Product{
		dbID:        dbID,
		sid:         sid,
		userID:      userID,
		name:        name,
		description: description,
		price:       price,
		category:    category,
		imageURL:    imageURL,
		popular:     popular,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

func (p *Product) DBID() uint           { return p.dbID }
func (p *Product) SID() string          { return p.sid }
func (p *Product) UserID() uint         { return p.userID }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() float64       { return p.price }
func (p *Product) Category() string     { return p.category }
func (p *Product) ImageURL() string     { return p.imageURL }
func (p *Product) IsPopular() bool      { return p.popular }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// SetDBID records the database identity after the first insert.
func (p *Product) SetDBID(dbID uint) {
	if p.dbID == 0 {
		p.dbID = dbID
	}
}

// SetImage attaches a product photo URL.
func (p *Product) SetImage(url string) {
	p.imageURL = url
	p.updatedAt = time.Now().UTC()
}

// MarkPopular toggles the highlighted flag.
func (p *Product) MarkPopular(popular bool) {
	p.popular = popular
	p.updatedAt = time.Now().UTC()
}

// Update mutates the owner-editable attributes.
func (p *Product) Update(name, description string, price float64, category string) error {
	if name == "" {
		return fmt.Errorf("product name is required")
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	p.name = name
	p.description = description
	p.price = roundPrice(price)
	if category != "" {
		p.category = category
	}
	p.updatedAt = time.Now().UTC()
	return nil
}
