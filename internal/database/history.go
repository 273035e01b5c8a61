// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gohango/gohango/internal/models"
)

// AddHistory records a user action against a restaurant. The action
// must already be validated; the restaurant must exist.
func (db *DB) AddHistory(ctx context.Context, userID, restaurantID int64, action string) (*models.HistoryEntry, error) {
	if _, err := db.GetRestaurant(ctx, userID, restaurantID); err != nil {
		return nil, err
	}

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO history (user_id, restaurant_id, action) VALUES (?, ?, ?)`,
		userID, restaurantID, action)
	if err != nil {
		return nil, fmt.Errorf("failed to add history: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read history id: %w", err)
	}

	var entry models.HistoryEntry
	err = db.conn.QueryRowContext(ctx, historySelect+` WHERE h.id = ?`, id).Scan(
		&entry.ID, &entry.RestaurantID, &entry.Action, &entry.CreatedAt,
		&entry.RestaurantName, &entry.Cuisine, &entry.Price, &entry.Rating, &entry.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read history entry: %w", err)
	}
	return &entry, nil
}

const historySelect = `
	SELECT h.id, h.restaurant_id, h.action, h.created_at,
	       r.name, r.cuisine, r.price, r.rating, r.image_url
	FROM history h
	JOIN restaurants r ON r.id = h.restaurant_id`

// GetHistory returns the user's history, newest first. An empty action
// returns all actions; limit 0 means no cap.
func (db *DB) GetHistory(ctx context.Context, userID int64, action string, limit int) ([]models.HistoryEntry, error) {
	query := historySelect + ` WHERE h.user_id = ?`
	args := []interface{}{userID}
	if action != "" {
		query += ` AND h.action = ?`
		args = append(args, action)
	}
	query += ` ORDER BY h.created_at DESC, h.id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer closeQuietly(rows)

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		err := rows.Scan(
			&e.ID, &e.RestaurantID, &e.Action, &e.CreatedAt,
			&e.RestaurantName, &e.Cuisine, &e.Price, &e.Rating, &e.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetRecentlyViewed returns the user's most recently viewed
// restaurants, deduplicated, newest view first.
func (db *DB) GetRecentlyViewed(ctx context.Context, userID int64, limit int) ([]models.Restaurant, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants r
		JOIN (
			SELECT restaurant_id, MAX(created_at) AS last_viewed
			FROM history
			WHERE user_id = ? AND action = 'view'
			GROUP BY restaurant_id
		) v ON v.restaurant_id = r.id
		ORDER BY v.last_viewed DESC
		LIMIT ?`, userID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recently viewed: %w", err)
	}
	defer closeQuietly(rows)

	return scanRestaurants(rows)
}

// DeleteHistoryEntry removes one history row owned by the user.
// Returns ErrNotFound when the row does not exist or belongs to
// someone else.
func (db *DB) DeleteHistoryEntry(ctx context.Context, userID, entryID int64) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM history WHERE id = ? AND user_id = ?`, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	return requireRow(res)
}

// DeleteOldHistory removes the user's history entries older than the
// cutoff and returns the number removed.
func (db *DB) DeleteOldHistory(ctx context.Context, userID int64, before time.Time) (int64, error) {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM history WHERE user_id = ? AND created_at < ?`, userID, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n, nil
}

// ClearHistory removes all history for the user.
func (db *DB) ClearHistory(ctx context.Context, userID int64) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM history WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// GetHistoryAggregate returns per-restaurant visit aggregates, most
// visited first, capped at limit. Feeds the taste-match term of the
// recommendation scorer.
func (db *DB) GetHistoryAggregate(ctx context.Context, userID int64, limit int) ([]models.HistoryStats, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT h.restaurant_id, r.cuisine, r.price, r.rating, COUNT(*) AS visits
		FROM history h
		JOIN restaurants r ON r.id = h.restaurant_id
		WHERE h.user_id = ?
		GROUP BY h.restaurant_id
		ORDER BY visits DESC, MAX(h.created_at) DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate history: %w", err)
	}
	defer closeQuietly(rows)

	stats := []models.HistoryStats{}
	for rows.Next() {
		var s models.HistoryStats
		if err := rows.Scan(&s.RestaurantID, &s.Cuisine, &s.Price, &s.Rating, &s.VisitCount); err != nil {
			return nil, fmt.Errorf("failed to scan history stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
