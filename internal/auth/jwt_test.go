// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gohango/gohango/internal/config"
)

const testSecret = "test-secret-key-at-least-32-characters-long"

func newTestManager(t *testing.T, timeout time.Duration) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret:      testSecret,
		SessionTimeout: timeout,
	})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}
	return m
}

func TestNewJWTManagerEmptySecret(t *testing.T) {
	if _, err := NewJWTManager(&config.SecurityConfig{}); err == nil {
		t.Error("empty secret accepted")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := newTestManager(t, time.Hour)

	token, err := m.GenerateToken(42, "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("token is not a three-part JWT: %q", token)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want alice@example.com", claims.Email)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Errorf("expiry not bounded by session timeout: %v", claims.ExpiresAt)
	}
}

func TestValidateTokenRejections(t *testing.T) {
	m := newTestManager(t, time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "malformed token",
			token: func(t *testing.T) string { return "not.a.jwt" },
		},
		{
			name:  "empty token",
			token: func(t *testing.T) string { return "" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other, err := NewJWTManager(&config.SecurityConfig{
					JWTSecret:      "a-completely-different-32-byte-secret!!",
					SessionTimeout: time.Hour,
				})
				if err != nil {
					t.Fatal(err)
				}
				tok, err := other.GenerateToken(1, "a@b.c")
				if err != nil {
					t.Fatal(err)
				}
				return tok
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				tok, err := newTestManager(t, -time.Minute).GenerateToken(1, "a@b.c")
				if err != nil {
					t.Fatal(err)
				}
				return tok
			},
		},
		{
			name: "unsigned algorithm",
			token: func(t *testing.T) string {
				tok := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
				s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
				if err != nil {
					t.Fatal(err)
				}
				return s
			},
		},
		{
			name: "tampered payload",
			token: func(t *testing.T) string {
				tok, err := m.GenerateToken(1, "a@b.c")
				if err != nil {
					t.Fatal(err)
				}
				parts := strings.Split(tok, ".")
				parts[1] = "eyJ1c2VySWQiOjk5OX0"
				return strings.Join(parts, ".")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.ValidateToken(tt.token(t)); err == nil {
				t.Error("invalid token accepted")
			}
		})
	}
}
