// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/gohango/gohango/internal/models"
)

// GetUserPreferences returns the user's stored preferences, or nil when
// none are saved. Absence is not an error.
//
// The cuisine_types and price_range columns hold JSON text; malformed
// payloads are normalized to nil here so one bad row never breaks
// recommendations.
func (db *DB) GetUserPreferences(ctx context.Context, userID int64) (*models.Preferences, error) {
	var (
		prefs       models.Preferences
		rawCuisines string
		rawRange    string
	)
	err := db.conn.QueryRowContext(ctx, `
		SELECT max_distance, max_walk_time, cuisine_types, price_range
		FROM user_preferences WHERE user_id = ?`, userID).Scan(
		&prefs.MaxDistance, &prefs.MaxWalkTime, &rawCuisines, &rawRange)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	prefs.CuisineTypes = models.ParseCuisineTypes(rawCuisines)
	prefs.PriceRange = models.ParsePriceRange(rawRange)
	return &prefs, nil
}

// SaveUserPreferences creates or replaces the user's preferences.
func (db *DB) SaveUserPreferences(ctx context.Context, userID int64, prefs *models.Preferences) error {
	cuisines := prefs.CuisineTypes
	if cuisines == nil {
		cuisines = []string{}
	}
	rawCuisines, err := json.Marshal(cuisines)
	if err != nil {
		return fmt.Errorf("failed to encode cuisine types: %w", err)
	}

	priceRange := prefs.PriceRange
	if priceRange == nil {
		priceRange = models.DefaultPreferences().PriceRange
	}
	rawRange, err := json.Marshal(priceRange)
	if err != nil {
		return fmt.Errorf("failed to encode price range: %w", err)
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, max_distance, max_walk_time, cuisine_types, price_range)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			max_distance = excluded.max_distance,
			max_walk_time = excluded.max_walk_time,
			cuisine_types = excluded.cuisine_types,
			price_range = excluded.price_range,
			updated_at = CURRENT_TIMESTAMP`,
		userID, prefs.MaxDistance, prefs.MaxWalkTime, string(rawCuisines), string(rawRange))
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// DeleteUserPreferences removes the user's saved preferences, reverting
// them to defaults. Deleting absent preferences is not an error.
func (db *DB) DeleteUserPreferences(ctx context.Context, userID int64) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM user_preferences WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}
	return nil
}
