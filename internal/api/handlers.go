// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"github.com/rs/zerolog"

	"github.com/gohango/gohango/internal/auth"
	"github.com/gohango/gohango/internal/config"
	"github.com/gohango/gohango/internal/database"
	"github.com/gohango/gohango/internal/recommend"
)

// Handler carries the dependencies shared by all endpoint handlers.
type Handler struct {
	db     *database.DB
	engine *recommend.Engine
	jwt    *auth.JWTManager
	hasher *auth.PasswordHasher
	cfg    *config.Config
	logger zerolog.Logger
}

// NewHandler wires the endpoint handlers.
func NewHandler(cfg *config.Config, db *database.DB, engine *recommend.Engine, jwtManager *auth.JWTManager, hasher *auth.PasswordHasher, logger zerolog.Logger) *Handler {
	return &Handler{
		db:     db,
		engine: engine,
		jwt:    jwtManager,
		hasher: hasher,
		cfg:    cfg,
		logger: logger.With().Str("component", "api").Logger(),
	}
}
