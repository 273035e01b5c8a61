// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/gohango/gohango/internal/auth"
	"github.com/gohango/gohango/internal/logging"
	"github.com/gohango/gohango/internal/models"
)

const claimsKey contextKey = "auth_claims"

// Authenticate requires a valid Bearer token on every request it wraps.
// Valid claims are stored in the request context for handlers; missing
// or invalid tokens get a 401 with the standard envelope.
func Authenticate(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := bearerClaims(r, jwtManager)
			if !ok {
				unauthorized(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// OptionalAuth attaches claims when a valid Bearer token is present and
// passes the request through anonymously otherwise. Used on read
// endpoints that personalize (favorite flags) but do not require login.
func OptionalAuth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := bearerClaims(r, jwtManager); ok {
				r = r.WithContext(withClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerClaims(r *http.Request, jwtManager *auth.JWTManager) (*auth.Claims, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}

	claims, err := jwtManager.ValidateToken(token)
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Debug().Err(err).Msg("token rejected")
		return nil, false
	}
	return claims, true
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated claims, or nil for
// anonymous requests.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(claimsKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}

// UserIDFromContext returns the authenticated user ID, or 0 for
// anonymous requests.
func UserIDFromContext(ctx context.Context) int64 {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(models.APIError{Success: false, Message: "Authentication required"}); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("failed to write 401 response")
	}
}
