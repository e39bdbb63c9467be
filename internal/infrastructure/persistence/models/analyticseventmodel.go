package models

import (
	"time"

	"chefviral/internal/shared/constants"
)

// AnalyticsEventModel is the persistence model for public page events.
// Write-once; read only through the windowed dashboard aggregate.
type AnalyticsEventModel struct {
	ID        uint      `gorm:"primarykey"`
	ProfileID uint      `gorm:"not null;index:idx_event_profile_kind_created,priority:1"`
	Kind      string    `gorm:"not null;size:20;index:idx_event_profile_kind_created,priority:2"`
	CreatedAt time.Time `gorm:"index:idx_event_profile_kind_created,priority:3"`
}

// TableName specifies the table name for GORM
func (AnalyticsEventModel) TableName() string {
	return constants.TableAnalyticsEvents
}
