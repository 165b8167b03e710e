package auth

import (
	"context"
	"errors"

	"authgate/auth-api/model"

	"gorm.io/gorm"
)

// PreCheckResult tells the client whether to prompt for a one-time
// passcode before completing the login. No session exists yet at this
// point.
type PreCheckResult struct {
	TwoFactorActivated bool
}

// PreCheck verifies email and password without issuing a session. It exists
// so the client can learn whether a second factor is needed; accounts with
// 2FA active must not get a session from a password alone.
func (s *Service) PreCheck(ctx context.Context, email, password string) (*PreCheckResult, error) {
	var user model.User

	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.Hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &PreCheckResult{TwoFactorActivated: user.TwoFactorActivated}, nil
}

// Credentials is a full login attempt. OTPCode may be empty for accounts
// without 2FA.
type Credentials struct {
	Email    string
	Password string
	OTPCode  string
}

// LoginResult carries the signed session token for the verified user.
type LoginResult struct {
	UserID string
	Token  string
}

// Login is the authoritative credential exchange. It re-verifies the
// password even when PreCheck already did: PreCheck's answer is advisory
// and nothing before this point may establish a session.
func (s *Service) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var user model.User

	err := s.DB.WithContext(ctx).Where("email = ?", creds.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.Hasher.Verify(creds.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if user.TwoFactorActivated {
		if creds.OTPCode == "" || !s.TOTP.Verify(creds.OTPCode, user.TwoFactorSecret) {
			return nil, ErrSecondFactorInvalid
		}
	}

	token, err := s.Sessions.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{UserID: user.ID, Token: token}, nil
}
