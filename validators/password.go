package validators

import "errors"

var (
	ErrPasswordEmpty    = errors.New("no password provided")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrPasswordMismatch = errors.New("the passwords did not match")
)

// PasswordValidator enforces the password policy before anything gets
// hashed or persisted. The upper bound is bcrypt's 72 byte input limit.
func PasswordValidator(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) < 8 {
		return ErrPasswordTooShort
	}

	if len(p) > 72 {
		return ErrPasswordTooLong
	}

	return nil
}

// PasswordMatchValidator validates the password against the policy and
// checks the confirmation matches.
func PasswordMatchValidator(p, confirm string) error {
	if err := PasswordValidator(p); err != nil {
		return err
	}

	if p != confirm {
		return ErrPasswordMismatch
	}

	return nil
}
