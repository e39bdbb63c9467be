package models

import (
	"time"

	"gorm.io/datatypes"

	"chefviral/internal/shared/constants"
)

// GeneratedContentModel is the persistence model for the generation
// history. The content body (hook, caption, cta, hashtags, script, visual
// prompt, image payload) is stored as a JSON document; kind and timestamp
// are promoted to columns for the quota count query.
type GeneratedContentModel struct {
	ID        uint           `gorm:"primarykey"`
	SID       string         `gorm:"column:sid;uniqueIndex;not null;size:50"`
	UserID    uint           `gorm:"not null;index:idx_content_owner_created,priority:1"`
	RunSID    string         `gorm:"column:run_sid;not null;size:50;index"`
	Kind      string         `gorm:"not null;size:20"`
	Content   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"index:idx_content_owner_created,priority:2"`
}

// TableName specifies the table name for GORM
func (GeneratedContentModel) TableName() string {
	return constants.TableGeneratedContents
}
