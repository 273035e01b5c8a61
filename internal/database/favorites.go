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

// GetFavorites returns the user's favorited restaurants, most recently
// favorited first.
func (db *DB) GetFavorites(ctx context.Context, userID int64) ([]models.Favorite, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT r.id, r.name, r.cuisine, r.price, r.rating, r.reviews,
		       r.distance, r.latitude, r.longitude, r.address, r.image_url, r.created_at,
		       f.created_at
		FROM favorites f
		JOIN restaurants r ON r.id = f.restaurant_id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC, f.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer closeQuietly(rows)

	favorites := []models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		err := rows.Scan(
			&f.ID, &f.Name, &f.Cuisine, &f.Price, &f.Rating, &f.Reviews,
			&f.Distance, &f.Latitude, &f.Longitude, &f.Address, &f.ImageURL, &f.CreatedAt,
			&f.FavoritedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		f.IsFavorite = true
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// AddFavorite favorites a restaurant for the user. Returns
// ErrDuplicateFavorite when already favorited and ErrNotFound when the
// restaurant does not exist.
func (db *DB) AddFavorite(ctx context.Context, userID, restaurantID int64) error {
	if _, err := db.GetRestaurant(ctx, userID, restaurantID); err != nil {
		return err
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO favorites (user_id, restaurant_id) VALUES (?, ?)`, userID, restaurantID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateFavorite
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite unfavorites a restaurant. Returns ErrNotFound when the
// favorite does not exist.
func (db *DB) RemoveFavorite(ctx context.Context, userID, restaurantID int64) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND restaurant_id = ?`, userID, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return requireRow(res)
}

// IsFavorite reports whether the user has favorited the restaurant.
func (db *DB) IsFavorite(ctx context.Context, userID, restaurantID int64) (bool, error) {
	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = ? AND restaurant_id = ?)`,
		userID, restaurantID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// ToggleFavorite flips the favorite state and reports the new state.
func (db *DB) ToggleFavorite(ctx context.Context, userID, restaurantID int64) (bool, error) {
	favorited, err := db.IsFavorite(ctx, userID, restaurantID)
	if err != nil {
		return false, err
	}
	if favorited {
		if err := db.RemoveFavorite(ctx, userID, restaurantID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := db.AddFavorite(ctx, userID, restaurantID); err != nil {
		return false, err
	}
	return true, nil
}

// GetFavoriteCuisineCounts returns the user's most-favorited cuisines,
// highest count first, capped at limit. Feeds the cuisine affinity term
// of the recommendation scorer.
func (db *DB) GetFavoriteCuisineCounts(ctx context.Context, userID int64, limit int) ([]models.CuisineCount, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT r.cuisine, COUNT(*) AS n
		FROM favorites f
		JOIN restaurants r ON r.id = f.restaurant_id
		WHERE f.user_id = ?
		GROUP BY r.cuisine
		ORDER BY n DESC, r.cuisine ASC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate favorite cuisines: %w", err)
	}
	defer closeQuietly(rows)

	counts := []models.CuisineCount{}
	for rows.Next() {
		var c models.CuisineCount
		if err := rows.Scan(&c.Cuisine, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan cuisine count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
