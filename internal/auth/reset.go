package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"authgate/auth-api/internal/session"
	"authgate/auth-api/model"
	"authgate/auth-api/pkg/security"
	"authgate/auth-api/validators"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// resetTokenTTL is how long a reset link stays usable.
const resetTokenTTL = time.Hour

// RequestReset starts the password reset flow for email. An unknown email
// is answered exactly like a known one so the endpoint can't be used to
// probe which accounts exist. A known email gets a fresh token that
// atomically replaces any previous one for that user; only the newest
// token is ever valid.
func (s *Service) RequestReset(ctx context.Context, ident *session.Claims, email string) error {
	if ident != nil {
		return ErrAlreadyAuthenticated
	}

	if err := validators.EmailValidator(email); err != nil {
		return err
	}

	var user model.User

	err := s.DB.WithContext(ctx).Select("id").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := security.MakeResetToken()
	if err != nil {
		return err
	}

	// Atomic insert-or-replace keyed on the user_id unique index. This,
	// not application logic, is what keeps concurrent reset requests
	// from leaving two live tokens.
	err = s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "token_expiry", "updated_at"}),
		}).
		Create(&model.PasswordResetToken{
			UserID:      user.ID,
			Token:       token,
			TokenExpiry: time.Now().Add(resetTokenTTL),
		}).Error
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/update-password?token=%s", s.BaseURL, token)
	body := fmt.Sprintf("Hey, %s!<br><br>"+
		"You requested to reset your password.<br>"+
		"Here's your password reset link. This link will expire in 1 hour:<br>"+
		"<a href='%s'>%s</a>", email, resetLink, resetLink)

	if err := s.Mailer.Send(email, "Your password reset request", body); err != nil {
		zap.L().Error("Failed to send password reset email", zap.Error(err))

		if !s.MailFailOpen {
			return ErrMailDelivery
		}
	}

	return nil
}

// ValidateResetToken reports whether token currently grants a password
// reset. A token whose expiry has been reached is as invalid as one that
// never existed. No side effects.
func (s *Service) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	var record model.PasswordResetToken

	err := s.DB.WithContext(ctx).Where("token = ?", token).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return time.Now().Before(record.TokenExpiry), nil
}

// ConsumeResetToken sets a new password for the token's owner and spends
// the token. The password update and the token deletion run in one
// transaction, with the delete strictly after the update, so a crash can
// never leave the password unchanged with the capability gone.
func (s *Service) ConsumeResetToken(ctx context.Context, ident *session.Claims, token, password, passwordConfirm string) error {
	if err := validators.PasswordMatchValidator(password, passwordConfirm); err != nil {
		return err
	}

	if ident != nil {
		return ErrAlreadyAuthenticated
	}

	var record model.PasswordResetToken

	err := s.DB.WithContext(ctx).Where("token = ?", token).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTokenInvalidOrExpired
		}
		return err
	}

	if !time.Now().Before(record.TokenExpiry) {
		return ErrTokenInvalidOrExpired
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.User{}).
			Where("id = ?", record.UserID).
			Update("password", hash).Error
		if err != nil {
			return err
		}

		return tx.Delete(&model.PasswordResetToken{}, "id = ?", record.ID).Error
	})
}
