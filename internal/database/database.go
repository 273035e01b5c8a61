// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/gohango/gohango/internal/config"
)

// DB wraps the SQLite connection pool. Safe for concurrent use.
type DB struct {
	conn   *sql.DB
	logger zerolog.Logger
}

// Open opens the SQLite database at the configured path, applies the
// connection pragmas, and verifies connectivity.
//
// WAL journaling allows concurrent readers during writes; foreign keys
// are enforced so favorite/history/review rows cannot outlive their
// user or restaurant. busy_timeout retries briefly instead of failing
// with SQLITE_BUSY under write contention.
func Open(cfg *config.DatabaseConfig, logger zerolog.Logger) (*DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA foreign_keys=ON;`,
		`PRAGMA busy_timeout=5000;`,
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	// SQLite serializes writes; a single connection avoids lock
	// contention between pool connections and keeps in-memory databases
	// coherent (each pool connection would otherwise see its own empty
	// database).
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{
		conn:   conn,
		logger: logger.With().Str("component", "database").Logger(),
	}

	db.logger.Info().Str("path", cfg.Path).Msg("database opened")
	return db, nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping verifies the connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}
