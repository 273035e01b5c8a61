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

// GetProfileStats returns the activity counters shown on the profile
// screen.
func (db *DB) GetProfileStats(ctx context.Context, userID int64) (*models.ProfileStats, error) {
	var stats models.ProfileStats
	err := db.conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM favorites WHERE user_id = ?),
			(SELECT COUNT(*) FROM history WHERE user_id = ?),
			(SELECT COUNT(*) FROM reviews WHERE user_id = ?)`,
		userID, userID, userID).Scan(&stats.FavoritesCount, &stats.HistoryCount, &stats.ReviewsCount)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile stats: %w", err)
	}
	return &stats, nil
}
