package auth

import (
	"testing"

	"authgate/auth-api/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangePassword(t *testing.T) {
	s, _ := newTestService(t)
	user := mustRegister(t, s, "a@x.com", "Abc12345!")
	ident := identityOf(user)

	require.NoError(t, s.ChangePassword(t.Context(), ident, "Abc12345!", "NewPass123!", "NewPass123!"))

	_, err := s.Login(t.Context(), Credentials{Email: "a@x.com", Password: "NewPass123!"})
	assert.NoError(t, err)

	_, err = s.Login(t.Context(), Credentials{Email: "a@x.com", Password: "Abc12345!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	s, _ := newTestService(t)
	user := mustRegister(t, s, "a@x.com", "Abc12345!")

	err := s.ChangePassword(t.Context(), identityOf(user), "not-the-password1", "NewPass123!", "NewPass123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Old password still works.
	_, err = s.Login(t.Context(), Credentials{Email: "a@x.com", Password: "Abc12345!"})
	assert.NoError(t, err)
}

func TestChangePasswordValidation(t *testing.T) {
	s, _ := newTestService(t)
	user := mustRegister(t, s, "a@x.com", "Abc12345!")
	ident := identityOf(user)

	err := s.ChangePassword(t.Context(), ident, "Abc12345!", "NewPass123!", "Different123!")
	assert.ErrorIs(t, err, validators.ErrPasswordMismatch)

	err = s.ChangePassword(t.Context(), ident, "Abc12345!", "short1!", "short1!")
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

func TestChangePasswordUnauthenticated(t *testing.T) {
	s, _ := newTestService(t)
	mustRegister(t, s, "a@x.com", "Abc12345!")

	err := s.ChangePassword(t.Context(), nil, "Abc12345!", "NewPass123!", "NewPass123!")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
