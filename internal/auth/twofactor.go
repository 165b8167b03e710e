package auth

import (
	"context"
	"errors"

	"authgate/auth-api/internal/session"
	"authgate/auth-api/model"

	"gorm.io/gorm"
)

// BeginTwoFactorSetup issues (or re-issues) the caller's pending shared
// secret and returns the provisioning URI to render as a scannable code.
// Calling it again before confirmation returns the same secret instead of
// rotating it, so a re-rendered code never invalidates an authenticator
// entry the user already scanned. Activation only happens in
// ConfirmTwoFactorSetup.
func (s *Service) BeginTwoFactorSetup(ctx context.Context, ident *session.Claims) (string, error) {
	user, err := s.userFor(ctx, ident)
	if err != nil {
		return "", err
	}

	secret := user.TwoFactorSecret
	if secret == "" {
		secret, err = s.TOTP.GenerateSecret(user.Email)
		if err != nil {
			return "", err
		}

		err = s.DB.WithContext(ctx).Model(&model.User{}).
			Where("id = ?", user.ID).
			Update("2fa_secret", secret).Error
		if err != nil {
			return "", err
		}
	}

	return s.TOTP.ProvisioningURI(user.Email, secret)
}

// ConfirmTwoFactorSetup activates 2FA once the caller proves they hold the
// pending secret by submitting a valid code. On a wrong code the secret is
// kept and the caller may retry.
func (s *Service) ConfirmTwoFactorSetup(ctx context.Context, ident *session.Claims, code string) error {
	user, err := s.userFor(ctx, ident)
	if err != nil {
		return err
	}

	if user.TwoFactorSecret == "" {
		return ErrEnrollmentNotStarted
	}

	if !s.TOTP.Verify(code, user.TwoFactorSecret) {
		return ErrInvalidCode
	}

	return s.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Update("2fa_activated", true).Error
}

// DisableTwoFactor turns 2FA off and discards the secret, so a later
// re-enrollment always starts from a fresh one.
func (s *Service) DisableTwoFactor(ctx context.Context, ident *session.Claims) error {
	if ident == nil {
		return ErrUnauthenticated
	}

	return s.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", ident.UserID).
		Updates(map[string]any{
			"2fa_activated": false,
			"2fa_secret":    "",
		}).Error
}

func (s *Service) userFor(ctx context.Context, ident *session.Claims) (*model.User, error) {
	if ident == nil {
		return nil, ErrUnauthenticated
	}

	var user model.User

	err := s.DB.WithContext(ctx).Where("id = ?", ident.UserID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
