package auth

import (
	"context"

	"authgate/auth-api/internal/session"
	"authgate/auth-api/model"
	"authgate/auth-api/validators"
)

// ChangePassword is the authenticated counterpart to the reset flow: it
// requires the current password instead of an emailed token.
func (s *Service) ChangePassword(ctx context.Context, ident *session.Claims, currentPassword, password, passwordConfirm string) error {
	user, err := s.userFor(ctx, ident)
	if err != nil {
		return err
	}

	if err := validators.PasswordMatchValidator(password, passwordConfirm); err != nil {
		return err
	}

	if !s.Hasher.Verify(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Update("password", hash).Error
}
