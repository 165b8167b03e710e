package security

import (
	"crypto/rand"
	"encoding/hex"
)

// resetTokenSize is the number of random bytes in a reset token, giving
// 256 bits of entropy in the hex-encoded bearer string.
const resetTokenSize = 32

// MakeResetToken returns a new opaque password reset token. The token is
// a bearer capability: holding it is the only proof required to consume it.
func MakeResetToken() (string, error) {
	b := make([]byte, resetTokenSize)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
