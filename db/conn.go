// Package db contains the database connection setup
package db

import (
	"errors"
	"fmt"

	"authgate/auth-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the database selected in the config and migrates the schema.
// TranslateError is required: registration relies on gorm.ErrDuplicatedKey
// to detect the unique email conflict across both drivers.
func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch viper.GetString("db.driver") {
	case "sqlite":
		dialector = sqlite.Open(viper.GetString("db.dsn"))
	case "postgres":
		dialector = postgres.Open(viper.GetString("db.dsn"))
	default:
		return nil, errors.New("unsupported database driver")
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.PasswordResetToken{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
