package models

import (
	"time"

	"chefviral/internal/shared/constants"
)

// BusinessProfileModel is the persistence model for tenant profiles.
// Exactly one row per user; the slug is the public identity and carries a
// unique index.
type BusinessProfileModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:50"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null;size:120"`
	Slug         string `gorm:"uniqueIndex;not null;size:80"`
	City         string `gorm:"not null;size:80;index"`
	Neighborhood string `gorm:"size:80;index"`
	Category     string `gorm:"not null;size:40"`
	Tone         string `gorm:"not null;size:60"`
	Phone        string `gorm:"not null;size:30"`
	Instagram    string `gorm:"size:80"`
	Address      string `gorm:"size:255"`
	DeliveryInfo string `gorm:"size:255"`
	ThemeColor   string `gorm:"size:9"`
	LogoURL      string `gorm:"size:500"`
	BannerURL    string `gorm:"size:500"`

	// Embedded subscription state
	PlanTier           string    `gorm:"not null;size:20;default:FREE"`
	SubscriptionStatus string    `gorm:"not null;size:20;default:trial"`
	PeriodEnd          time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (BusinessProfileModel) TableName() string {
	return constants.TableBusinessProfiles
}
