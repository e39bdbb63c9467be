package dto

import (
	"time"

	"chefviral/internal/domain/catalog"
)

// AddProductRequest creates one catalog item.
type AddProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	IsPopular   bool    `json:"is_popular"`
}

// UpdateProductRequest replaces the mutable fields of a catalog item.
type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	IsPopular   bool    `json:"is_popular"`
}

// ProductResponse is the API shape of a catalog item.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsPopular   bool      `json:"is_popular"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductListResponse is the tenant catalog with its plan headroom.
type ProductListResponse struct {
	Products    []ProductResponse `json:"products"`
	Count       int               `json:"count"`
	MaxProducts int               `json:"max_products"`
}

// ToProductResponse maps a domain product to its API shape.
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.SID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Category:    p.Category(),
		ImageURL:    p.ImageURL(),
		IsPopular:   p.IsPopular(),
		CreatedAt:   p.CreatedAt(),
	}
}
