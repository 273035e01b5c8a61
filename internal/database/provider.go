// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package database

import (
	"context"
	"fmt"

	"github.com/gohango/gohango/internal/models"
)

// GetCandidateRestaurants returns restaurants rated at or above
// minRating, each flagged with whether the user has favorited it.
// Together with GetUserPreferences, GetFavoriteCuisineCounts, and
// GetHistoryAggregate this satisfies the recommendation engine's
// DataProvider interface.
func (db *DB) GetCandidateRestaurants(ctx context.Context, userID int64, minRating float64) ([]models.Restaurant, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants r WHERE r.rating >= ?`,
		userID, minRating)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer closeQuietly(rows)

	return scanRestaurants(rows)
}
