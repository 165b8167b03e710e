// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	migrateOnly    = pflag.Bool("migrate-only", false, "Runs database migrations and exits")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers = []string{"sqlite", "postgres"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// MigrateOnly reports whether the process should stop after running
// migrations.
func MigrateOnly() bool {
	return *migrateOnly
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.base_url", "host_base_url")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.ttl", "jwt_ttl")

	v.BindEnv("totp.issuer", "totp_issuer")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender_address", "mail_sender_address")
	v.BindEnv("mail.password", "mail_password")
	v.BindEnv("mail.fail_open", "mail_fail_open")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.base_url", "http://localhost:8080")
	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "database.db")

	v.SetDefault("jwt.ttl", "720h")

	v.SetDefault("totp.issuer", "authgate")

	v.SetDefault("mail.port", 587)
	// A failed reset mail is reported to the caller by default. Set this
	// to true to log the failure and answer success anyway.
	v.SetDefault("mail.fail_open", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("host.base_url") == "" {
		return errors.New("host.base_url can't be empty")
	}

	if !slices.Contains(validDBDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("db.dsn can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if _, err := time.ParseDuration(v.GetString("jwt.ttl")); err != nil {
		return errors.New("jwt.ttl must be a valid duration")
	}

	if v.GetString("mail.host") == "" {
		return errors.New("mail.host can't be empty")
	}

	if v.GetString("mail.sender_address") == "" {
		return errors.New("mail.sender_address can't be empty")
	}

	if v.GetInt("mail.port") <= 0 {
		return errors.New("invalid mail port provided")
	}

	return nil
}
