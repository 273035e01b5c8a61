// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

// Package config loads and validates application configuration.
//
// Configuration is layered with Koanf v2: built-in defaults, then an
// optional YAML config file, then environment variables. Later layers
// override earlier ones.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Security  SecurityConfig  `koanf:"security"`
	API       APIConfig       `koanf:"api"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`

	// CORSOrigins lists allowed CORS origins. "*" allows any origin.
	CORSOrigins []string `koanf:"cors_origins"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	// Path is the SQLite database file. ":memory:" opens an in-memory
	// database, used by tests.
	Path string `koanf:"path"`

	// SeedData loads the bundled demo restaurant catalog into an empty
	// database on startup.
	SeedData bool `koanf:"seed_data"`
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	// JWTSecret signs session tokens. Minimum 32 characters.
	JWTSecret string `koanf:"jwt_secret"`

	// SessionTimeout is the JWT token lifetime.
	SessionTimeout time.Duration `koanf:"session_timeout"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `koanf:"bcrypt_cost"`

	// RateLimitReqs/RateLimitWindow bound requests per client IP on
	// authentication endpoints.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// APIConfig holds pagination limits for list endpoints.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// MaxResults caps the ranked list returned per request.
	MaxResults int `koanf:"max_results"`

	// MinRating pre-filters the candidate set.
	MinRating float64 `koanf:"min_rating"`

	// FavoriteCuisineLimit bounds the favorite-cuisine aggregation.
	FavoriteCuisineLimit int `koanf:"favorite_cuisine_limit"`

	// HistoryLimit bounds the visit-history aggregation.
	HistoryLimit int `koanf:"history_limit"`

	// DiscoveryRate is the activation probability of the randomized
	// discovery bonus, in [0,1].
	DiscoveryRate float64 `koanf:"discovery_rate"`

	// Seed seeds the discovery random source. 0 uses a time-based seed.
	Seed int64 `koanf:"seed"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Default returns a Config with all default values. Defaults are applied
// first, then overridden by the config file and environment variables.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        5000,
			Timeout:     30 * time.Second,
			CORSOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Path:     "data/gohango.db",
			SeedData: true,
		},
		Security: SecurityConfig{
			JWTSecret:       "",
			SessionTimeout:  24 * time.Hour,
			BcryptCost:      12,
			RateLimitReqs:   10,
			RateLimitWindow: time.Minute,
		},
		API: APIConfig{
			DefaultPageSize: 50,
			MaxPageSize:     200,
		},
		Recommend: RecommendConfig{
			MaxResults:           10,
			MinRating:            4.0,
			FavoriteCuisineLimit: 3,
			HistoryLimit:         10,
			DiscoveryRate:        0.3,
			Seed:                 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for invalid or insecure values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters")
	}
	if c.Security.BcryptCost < 10 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("security.bcrypt_cost must be in 10-31, got %d", c.Security.BcryptCost)
	}
	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("security.session_timeout must be positive")
	}
	if c.API.DefaultPageSize < 1 || c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api page sizes invalid: default=%d max=%d",
			c.API.DefaultPageSize, c.API.MaxPageSize)
	}
	if c.Recommend.MaxResults < 1 {
		return fmt.Errorf("recommend.max_results must be positive, got %d", c.Recommend.MaxResults)
	}
	if c.Recommend.MinRating < 0 || c.Recommend.MinRating > 5 {
		return fmt.Errorf("recommend.min_rating must be in 0-5, got %g", c.Recommend.MinRating)
	}
	if c.Recommend.DiscoveryRate < 0 || c.Recommend.DiscoveryRate > 1 {
		return fmt.Errorf("recommend.discovery_rate must be in 0-1, got %g", c.Recommend.DiscoveryRate)
	}
	return nil
}
