// Package auth implements the credential lifecycle: login with an optional
// second factor, registration, the password reset token lifecycle and 2FA
// enrollment. Every operation takes the caller's verified identity (or nil
// for anonymous callers) explicitly, so nothing in here reads ambient
// session state.
package auth

import (
	"authgate/auth-api/internal/session"
	"authgate/auth-api/pkg/security"

	"gorm.io/gorm"
)

// Mailer delivers a single message. Transport details live with the
// implementation.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type Service struct {
	DB       *gorm.DB
	Hasher   *security.PasswordHasher
	TOTP     *security.TOTPEngine
	Sessions *session.Issuer
	Mailer   Mailer

	// BaseURL is the public origin embedded in reset links.
	BaseURL string

	// MailFailOpen controls what happens when the reset mail can't be
	// sent after the token was written: true logs and reports success,
	// false surfaces ErrMailDelivery. The token write is never rolled
	// back either way.
	MailFailOpen bool
}
