package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"column:password"`

	// TwoFactorSecret is empty until the user begins 2FA enrollment.
	// TwoFactorActivated is only ever set while a secret is present.
	TwoFactorSecret    string `gorm:"column:2fa_secret"`
	TwoFactorActivated bool   `gorm:"column:2fa_activated;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	ResetToken *PasswordResetToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUIDv7 so IDs sort by creation time.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		u.ID = id.String()
	}
	return nil
}
