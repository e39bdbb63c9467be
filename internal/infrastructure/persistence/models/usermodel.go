package models

import (
	"time"

	"chefviral/internal/shared/constants"
)

// UserModel is the persistence model for accounts.
type UserModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:50"`
	Email       string `gorm:"uniqueIndex;not null;size:255"`
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
