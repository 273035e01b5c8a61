// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

// Package main is the entry point for the GohanGo server.
//
// GohanGo is a restaurant discovery service with personalized
// recommendations. It exposes a JSON REST API for browsing and
// searching a restaurant catalog, managing favorites, viewing history,
// reviews, and user preferences, and serving ranked recommendations
// computed from those signals.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered Koanf v2 sources (defaults, config file, env)
//  2. Database: SQLite with schema migration and optional demo catalog seeding
//  3. Auth: JWT token manager and bcrypt password hasher
//  4. Recommendation engine: heuristic scorer backed by the database
//  5. HTTP Server: chi router with CORS, rate limiting, and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (GOHANGO_ prefix, e.g. GOHANGO_SERVER_PORT)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// A JWT secret of at least 32 characters is required:
//
//	export GOHANGO_SECURITY_JWT_SECRET=$(openssl rand -base64 32)
//	./gohango
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting new connections, waits up to 10 seconds for in-flight
// requests, then closes the database.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gohango/gohango/internal/api"
	"github.com/gohango/gohango/internal/auth"
	"github.com/gohango/gohango/internal/config"
	"github.com/gohango/gohango/internal/database"
	"github.com/gohango/gohango/internal/logging"
	"github.com/gohango/gohango/internal/recommend"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("db_path", cfg.Database.Path).
		Bool("seed_data", cfg.Database.SeedData).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(&cfg.Database, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if err := db.EnsureSchema(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Failed to migrate schema")
	}
	if cfg.Database.SeedData {
		if err := db.SeedRestaurants(ctx); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed restaurant catalog")
		}
	}
	logging.Info().Msg("Database initialized")

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to configure JWT")
	}
	hasher, err := auth.NewPasswordHasher(cfg.Security.BcryptCost)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to configure password hashing")
	}

	engine, err := recommend.NewEngine(&recommend.Config{
		MaxResults:           cfg.Recommend.MaxResults,
		MinRating:            cfg.Recommend.MinRating,
		FavoriteCuisineLimit: cfg.Recommend.FavoriteCuisineLimit,
		HistoryLimit:         cfg.Recommend.HistoryLimit,
		DiscoveryRate:        cfg.Recommend.DiscoveryRate,
		Seed:                 cfg.Recommend.Seed,
	}, db, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handler := api.NewHandler(cfg, db, engine, jwtManager, hasher, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown incomplete")
	}
	logging.Info().Msg("Server stopped")
}
