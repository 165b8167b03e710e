package auth

import (
	"context"
	"errors"

	"authgate/auth-api/model"
	"authgate/auth-api/validators"

	"gorm.io/gorm"
)

// Register creates a new account. Email uniqueness is decided solely by
// the database constraint on insert; checking for an existing row first
// would race with concurrent registrations.
func (s *Service) Register(ctx context.Context, email, password, passwordConfirm string) (*model.User, error) {
	if err := validators.EmailValidator(email); err != nil {
		return nil, err
	}

	if err := validators.PasswordMatchValidator(password, passwordConfirm); err != nil {
		return nil, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}
