// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package config

import (
	"strings"
	"testing"
	"time"
)

// testSecret satisfies the 32-character minimum.
const testSecret = "0123456789abcdef0123456789abcdef"

func validConfig() *Config {
	cfg := Default()
	cfg.Security.JWTSecret = testSecret
	return cfg
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Recommend.MaxResults != 10 {
		t.Errorf("Recommend.MaxResults = %d, want 10", cfg.Recommend.MaxResults)
	}
	if cfg.Recommend.MinRating != 4.0 {
		t.Errorf("Recommend.MinRating = %g, want 4.0", cfg.Recommend.MinRating)
	}
	if cfg.Recommend.DiscoveryRate != 0.3 {
		t.Errorf("Recommend.DiscoveryRate = %g, want 0.3", cfg.Recommend.DiscoveryRate)
	}
	if cfg.Security.BcryptCost != 12 {
		t.Errorf("Security.BcryptCost = %d, want 12", cfg.Security.BcryptCost)
	}
	if cfg.Security.SessionTimeout != 24*time.Hour {
		t.Errorf("Security.SessionTimeout = %s, want 24h", cfg.Security.SessionTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config passes",
			mutate: func(*Config) {},
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.Security.JWTSecret = "" },
			wantErr: "jwt_secret",
		},
		{
			name:    "short jwt secret",
			mutate:  func(c *Config) { c.Security.JWTSecret = "too-short" },
			wantErr: "jwt_secret",
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.Database.Path = "  " },
			wantErr: "database.path",
		},
		{
			name:    "discovery rate above one",
			mutate:  func(c *Config) { c.Recommend.DiscoveryRate = 1.5 },
			wantErr: "discovery_rate",
		},
		{
			name:    "negative min rating",
			mutate:  func(c *Config) { c.Recommend.MinRating = -1 },
			wantErr: "min_rating",
		},
		{
			name:    "max page below default page",
			mutate:  func(c *Config) { c.API.MaxPageSize = 1 },
			wantErr: "page sizes",
		},
		{
			name:    "bcrypt cost too low",
			mutate:  func(c *Config) { c.Security.BcryptCost = 4 },
			wantErr: "bcrypt_cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"GOHANGO_SERVER_PORT", "server.port"},
		{"GOHANGO_SERVER_CORS_ORIGINS", "server.cors_origins"},
		{"GOHANGO_SECURITY_JWT_SECRET", "security.jwt_secret"},
		{"GOHANGO_DATABASE_PATH", "database.path"},
		{"GOHANGO_RECOMMEND_DISCOVERY_RATE", "recommend.discovery_rate"},
		{"GOHANGO_LOGGING_LEVEL", "logging.level"},
		{"GOHANGO_BOGUS_KEY", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransform(tt.env); got != tt.want {
				t.Errorf("envTransform(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOHANGO_SECURITY_JWT_SECRET", testSecret)
	t.Setenv("GOHANGO_SERVER_PORT", "8123")
	t.Setenv("GOHANGO_SERVER_CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("GOHANGO_DATABASE_SEED_DATA", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8123 {
		t.Errorf("Server.Port = %d, want 8123", cfg.Server.Port)
	}
	if cfg.Database.SeedData {
		t.Error("Database.SeedData = true, want false")
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.Server.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Server.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Server.CORSOrigins[i], want[i])
		}
	}
}

func TestAddr(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 9000}
	if got := cfg.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", got)
	}
}
