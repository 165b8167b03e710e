// Package security contains everything related to the security of user credentials
package security

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt with a fixed cost factor. Cost 10 matches
// what existing password digests in the users table were created with.
type PasswordHasher struct {
	Cost int
}

func NewHasher() *PasswordHasher {
	return &PasswordHasher{Cost: 10}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Verify reports whether password matches the stored digest. Malformed
// digests simply fail verification.
func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
