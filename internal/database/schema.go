// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package database

import (
	"context"
	"fmt"
)

// schemaStatements create the full schema. Ordered so that foreign key
// targets exist before their referencing tables.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		email         TEXT NOT NULL UNIQUE COLLATE NOCASE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,

	`CREATE TABLE IF NOT EXISTS restaurants (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		cuisine    TEXT NOT NULL,
		price      INTEGER NOT NULL DEFAULT 1,
		rating     REAL NOT NULL DEFAULT 0,
		reviews    INTEGER NOT NULL DEFAULT 0,
		distance   INTEGER,
		latitude   REAL,
		longitude  REAL,
		address    TEXT NOT NULL DEFAULT '',
		image_url  TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,

	`CREATE TABLE IF NOT EXISTS favorites (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id       INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(user_id, restaurant_id)
	);`,

	`CREATE TABLE IF NOT EXISTS history (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id       INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		action        TEXT NOT NULL DEFAULT 'view',
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id       INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		rating        INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment       TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(user_id, restaurant_id)
	);`,

	`CREATE TABLE IF NOT EXISTS user_preferences (
		user_id       INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		max_distance  INTEGER,
		max_walk_time INTEGER,
		cuisine_types TEXT NOT NULL DEFAULT '[]',
		price_range   TEXT NOT NULL DEFAULT '[1,3]',
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,

	`CREATE INDEX IF NOT EXISTS idx_restaurants_cuisine ON restaurants(cuisine);`,
	`CREATE INDEX IF NOT EXISTS idx_restaurants_rating ON restaurants(rating);`,
	`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_history_user ON history(user_id, created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_restaurant ON reviews(restaurant_id);`,
}

// EnsureSchema creates all tables and indexes if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
