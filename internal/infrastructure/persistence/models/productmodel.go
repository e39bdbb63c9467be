package models

import (
	"time"

	"chefviral/internal/shared/constants"
)

// ProductModel is the persistence model for catalog items.
type ProductModel struct {
	ID          uint    `gorm:"primarykey"`
	SID         string  `gorm:"column:sid;uniqueIndex;not null;size:50"`
	UserID      uint    `gorm:"not null;index:idx_product_owner"`
	Name        string  `gorm:"not null;size:120;index"`
	Description string  `gorm:"size:500"`
	Price       float64 `gorm:"not null;index"`
	Category    string  `gorm:"not null;size:60;index"`
	ImageURL    string  `gorm:"size:500"`
	IsPopular   bool    `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}
