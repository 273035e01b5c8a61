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

// UpsertReview creates or replaces the user's review of a restaurant
// and refreshes the restaurant's cached rating aggregates. One review
// per user per restaurant.
func (db *DB) UpsertReview(ctx context.Context, userID, restaurantID int64, rating int, comment string) (*models.Review, error) {
	if _, err := db.GetRestaurant(ctx, userID, restaurantID); err != nil {
		return nil, err
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin review transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reviews (user_id, restaurant_id, rating, comment)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, restaurant_id) DO UPDATE SET
			rating = excluded.rating,
			comment = excluded.comment,
			updated_at = CURRENT_TIMESTAMP`,
		userID, restaurantID, rating, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert review: %w", err)
	}

	// Keep the denormalized catalog aggregates in step with the review
	// rows so list queries never need the join.
	_, err = tx.ExecContext(ctx, `
		UPDATE restaurants SET
			rating = (SELECT ROUND(AVG(rating), 1) FROM reviews WHERE restaurant_id = ?),
			reviews = (SELECT COUNT(*) FROM reviews WHERE restaurant_id = ?)
		WHERE id = ?`,
		restaurantID, restaurantID, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh rating aggregates: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit review: %w", err)
	}

	return db.getReview(ctx, userID, restaurantID)
}

func (db *DB) getReview(ctx context.Context, userID, restaurantID int64) (*models.Review, error) {
	var rv models.Review
	err := db.conn.QueryRowContext(ctx, `
		SELECT v.id, v.user_id, v.restaurant_id, v.rating, v.comment, v.created_at, u.name
		FROM reviews v
		JOIN users u ON u.id = v.user_id
		WHERE v.user_id = ? AND v.restaurant_id = ?`,
		userID, restaurantID).Scan(
		&rv.ID, &rv.UserID, &rv.RestaurantID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UserName)
	if err != nil {
		return nil, fmt.Errorf("failed to read review: %w", err)
	}
	return &rv, nil
}

// GetRestaurantReviews returns all reviews of a restaurant, newest
// first, with reviewer names joined.
func (db *DB) GetRestaurantReviews(ctx context.Context, restaurantID int64) ([]models.Review, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT v.id, v.user_id, v.restaurant_id, v.rating, v.comment, v.created_at, u.name
		FROM reviews v
		JOIN users u ON u.id = v.user_id
		WHERE v.restaurant_id = ?
		ORDER BY v.created_at DESC, v.id DESC`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer closeQuietly(rows)

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		err := rows.Scan(&rv.ID, &rv.UserID, &rv.RestaurantID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UserName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// GetUserReviews returns all reviews written by a user, newest first,
// with restaurant names joined.
func (db *DB) GetUserReviews(ctx context.Context, userID int64) ([]models.Review, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT v.id, v.user_id, v.restaurant_id, v.rating, v.comment, v.created_at, r.name
		FROM reviews v
		JOIN restaurants r ON r.id = v.restaurant_id
		WHERE v.user_id = ?
		ORDER BY v.created_at DESC, v.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user reviews: %w", err)
	}
	defer closeQuietly(rows)

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		err := rows.Scan(&rv.ID, &rv.UserID, &rv.RestaurantID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.RestaurantName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// GetRatingStats summarizes a restaurant's reviews: average, total, and
// the 1-5 star distribution. Every star bucket is present even at zero.
func (db *DB) GetRatingStats(ctx context.Context, restaurantID int64) (*models.RatingStats, error) {
	stats := &models.RatingStats{Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT rating, COUNT(*) FROM reviews WHERE restaurant_id = ? GROUP BY rating`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to read rating distribution: %w", err)
	}
	defer closeQuietly(rows)

	sum := 0
	for rows.Next() {
		var star, count int
		if err := rows.Scan(&star, &count); err != nil {
			return nil, fmt.Errorf("failed to scan rating bucket: %w", err)
		}
		stats.Distribution[star] = count
		stats.TotalReviews += count
		sum += star * count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
	}
	return stats, nil
}

// DeleteReview removes the user's review of a restaurant and refreshes
// the restaurant's rating aggregates. Returns ErrNotFound when no
// review exists.
func (db *DB) DeleteReview(ctx context.Context, userID, restaurantID int64) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM reviews WHERE user_id = ? AND restaurant_id = ?`, userID, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE restaurants SET
			rating = COALESCE((SELECT ROUND(AVG(rating), 1) FROM reviews WHERE restaurant_id = ?), 0),
			reviews = (SELECT COUNT(*) FROM reviews WHERE restaurant_id = ?)
		WHERE id = ?`,
		restaurantID, restaurantID, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to refresh rating aggregates: %w", err)
	}

	return tx.Commit()
}
