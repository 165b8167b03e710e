// Package model contains the gorm models persisted by the service
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordResetToken is a single-use reset capability. The unique index on
// UserID is load-bearing: it is what lets a reset request atomically replace
// the previous token instead of accumulating live ones.
type PasswordResetToken struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	UserID      string `gorm:"uniqueIndex;not null"`
	Token       string `gorm:"index"`
	TokenExpiry time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PasswordResetToken) TableName() string {
	return "password_reset_token"
}

func (t *PasswordResetToken) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		t.ID = id.String()
	}
	return nil
}
