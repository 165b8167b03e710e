package security

import (
	"encoding/base32"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTPEngine generates shared secrets and verifies 6-digit codes against
// them. Codes are checked with a 30 second step and one step of skew in
// either direction, so a code stays usable for roughly ±30s of clock drift.
type TOTPEngine struct {
	Issuer string
	Period uint
	Skew   uint
}

func NewTOTP(issuer string) *TOTPEngine {
	return &TOTPEngine{
		Issuer: issuer,
		Period: 30,
		Skew:   1,
	}
}

// GenerateSecret returns a new base32 shared secret for the given account.
func (e *TOTPEngine) GenerateSecret(account string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      e.Issuer,
		AccountName: account,
		Period:      e.Period,
	})
	if err != nil {
		return "", err
	}

	return key.Secret(), nil
}

// ProvisioningURI builds the otpauth:// URI for an existing secret. The URI
// encodes the issuer label and account so authenticator apps can render it
// from a scanned code.
func (e *TOTPEngine) ProvisioningURI(account, secret string) (string, error) {
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
	if err != nil {
		return "", err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      e.Issuer,
		AccountName: account,
		Period:      e.Period,
		Secret:      raw,
	})
	if err != nil {
		return "", err
	}

	return key.URL(), nil
}

// Verify reports whether code is valid for secret at the current time.
func (e *TOTPEngine) Verify(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    e.Period,
		Skew:      e.Skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})

	return err == nil && ok
}
