package auth

import (
	"testing"
	"time"

	"authgate/auth-api/model"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreCheck(t *testing.T) {
	s, _ := newTestService(t)
	mustRegister(t, s, "a@x.com", "Abc12345!")

	t.Run("correct credentials without 2FA", func(t *testing.T) {
		result, err := s.PreCheck(t.Context(), "a@x.com", "Abc12345!")
		require.NoError(t, err)
		assert.False(t, result.TwoFactorActivated)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.PreCheck(t.Context(), "a@x.com", "wrongwrong1!")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.PreCheck(t.Context(), "nobody@x.com", "Abc12345!")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

// An unknown email and a wrong password must be indistinguishable, even
// for emails that nearly match an existing account.
func TestPreCheckDoesNotLeakAccountExistence(t *testing.T) {
	s, _ := newTestService(t)
	mustRegister(t, s, "a@x.com", "Abc12345!")

	_, wrongPassword := s.PreCheck(t.Context(), "a@x.com", "not-the-password1")
	_, unknownUser := s.PreCheck(t.Context(), "aa@x.com", "not-the-password1")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLoginWithout2FA(t *testing.T) {
	s, _ := newTestService(t)
	user := mustRegister(t, s, "a@x.com", "Abc12345!")

	result, err := s.Login(t.Context(), Credentials{Email: "a@x.com", Password: "Abc12345!"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.UserID)

	claims, err := s.Sessions.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLoginBadCredentials(t *testing.T) {
	s, _ := newTestService(t)
	mustRegister(t, s, "a@x.com", "Abc12345!")

	_, err := s.Login(t.Context(), Credentials{Email: "a@x.com", Password: "nope-nope1!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(t.Context(), Credentials{Email: "nobody@x.com", Password: "Abc12345!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWith2FA(t *testing.T) {
	s, _ := newTestService(t)
	user := mustRegister(t, s, "a@x.com", "Abc12345!")

	// Enroll and activate 2FA for the account.
	ident := identityOf(user)
	_, err := s.BeginTwoFactorSetup(t.Context(), ident)
	require.NoError(t, err)

	var stored model.User
	require.NoError(t, s.DB.Where("id = ?", user.ID).First(&stored).Error)

	code, err := totp.GenerateCode(stored.TwoFactorSecret, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.ConfirmTwoFactorSetup(t.Context(), ident, code))

	t.Run("missing code", func(t *testing.T) {
		_, err := s.Login(t.Context(), Credentials{Email: "a@x.com", Password: "Abc12345!"})
		assert.ErrorIs(t, err, ErrSecondFactorInvalid)
	})

	t.Run("wrong code", func(t *testing.T) {
		_, err := s.Login(t.Context(), Credentials{Email: "a@x.com", Password: "Abc12345!", OTPCode: "000000"})
		assert.ErrorIs(t, err, ErrSecondFactorInvalid)
	})

	t.Run("wrong password with valid code", func(t *testing.T) {
		code, err := totp.GenerateCode(stored.TwoFactorSecret, time.Now())
		require.NoError(t, err)

		_, err = s.Login(t.Context(), Credentials{Email: "a@x.com", Password: "nope-nope1!", OTPCode: code})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("correct password and code", func(t *testing.T) {
		code, err := totp.GenerateCode(stored.TwoFactorSecret, time.Now())
		require.NoError(t, err)

		result, err := s.Login(t.Context(), Credentials{Email: "a@x.com", Password: "Abc12345!", OTPCode: code})
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.UserID)
	})
}

// PreCheck must never issue a session, even for accounts without 2FA.
func TestPreCheckIssuesNoSession(t *testing.T) {
	s, _ := newTestService(t)
	mustRegister(t, s, "a@x.com", "Abc12345!")

	result, err := s.PreCheck(t.Context(), "a@x.com", "Abc12345!")
	require.NoError(t, err)
	assert.False(t, result.TwoFactorActivated)
	// The result type has no token field; this test documents that the
	// exchange in Login is the only place a session is created.
}
