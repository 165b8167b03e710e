package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two must stay indistinguishable so login can't be
	// used to probe which emails have accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrSecondFactorInvalid is returned when an account with 2FA active
	// is given a missing or wrong one-time passcode at login.
	ErrSecondFactorInvalid = errors.New("incorrect one-time passcode")

	// ErrAlreadyAuthenticated rejects password reset operations from
	// callers that already hold a session.
	ErrAlreadyAuthenticated = errors.New("already logged in")

	// ErrUnauthenticated rejects operations that require a session.
	ErrUnauthenticated = errors.New("not logged in")

	ErrTokenInvalidOrExpired = errors.New("reset token is invalid or has expired")
	ErrEmailTaken            = errors.New("an account with this email is already registered")
	ErrUserNotFound          = errors.New("user not found")

	// ErrInvalidCode is returned by 2FA enrollment confirmation. The
	// pending secret is kept so the caller can retry.
	ErrInvalidCode = errors.New("invalid one-time passcode")

	// ErrEnrollmentNotStarted is returned when 2FA confirmation runs
	// before any secret was issued.
	ErrEnrollmentNotStarted = errors.New("two-factor enrollment has not been started")

	// ErrMailDelivery reports a reset mail that could not be handed to
	// the mail transport. The reset token was still written.
	ErrMailDelivery = errors.New("failed to send password reset email")
)
