package service

import (
	"time"

	"authgate/auth-api/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenCleanup periodically deletes expired password reset tokens. Purely
// hygienic: validation already treats expired rows as absent, this just
// keeps them from piling up.
func TokenCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			r := db.
				Where("token_expiry < ?", time.Now()).
				Delete(&model.PasswordResetToken{})
			if r.Error != nil {
				zap.L().Error("Failed to clean up expired reset tokens", zap.Error(r.Error))
				continue
			}

			if r.RowsAffected > 0 {
				zap.L().Debug("Cleaned up expired reset tokens", zap.Int64("count", r.RowsAffected))
			}
		}
	}()
}
