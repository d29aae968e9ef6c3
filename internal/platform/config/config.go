// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (TokenService, Hasher, DB) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/smartval/identity/internal/platform/sec"
)

// # Configuration Schema

// Config holds all runtime configuration for the identity API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Token signing. A missing secret is fatal at startup, never per-request.
	SecretKey    string        `env:"SECRET_KEY,required"`
	JWTAlgorithm string        `env:"JWT_ALGORITHM"     envDefault:"HS256"`
	AccessTTL    time.Duration `env:"ACCESS_TOKEN_TTL"  envDefault:"30m"`
	RefreshTTL   time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"696h"` // 29 days

	// Password hashing cost factor (bcrypt).
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	// Password policy toggles. Each rule is independently switchable so the
	// policy changes with configuration, not code.
	PasswordMinLength int  `env:"PASSWORD_MIN_LENGTH"        envDefault:"8"`
	PasswordUppercase bool `env:"PASSWORD_REQUIRE_UPPERCASE" envDefault:"true"`
	PasswordLowercase bool `env:"PASSWORD_REQUIRE_LOWERCASE" envDefault:"true"`
	PasswordDigits    bool `env:"PASSWORD_REQUIRE_DIGITS"    envDefault:"true"`
	PasswordSpecial   bool `env:"PASSWORD_REQUIRE_SPECIAL"   envDefault:"true"`

	// Optional service-to-service key guarding token introspection.
	// Empty disables the guard.
	IntrospectionAPIKey string `env:"INTROSPECTION_API_KEY"`

	// Cross-Origin Resource Sharing
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:""`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// PasswordPolicy builds the [sec.PasswordPolicy] described by the env toggles.
func (c *Config) PasswordPolicy() sec.PasswordPolicy {
	return sec.PasswordPolicy{
		MinLength: c.PasswordMinLength,
		Uppercase: c.PasswordUppercase,
		Lowercase: c.PasswordLowercase,
		Digits:    c.PasswordDigits,
		Special:   c.PasswordSpecial,
	}
}

// AllowedOrigins returns the configured CORS origin allowlist.
func (c *Config) AllowedOrigins() []string {
	return c.CORSAllowOrigins
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
