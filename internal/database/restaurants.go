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
	"strings"

	"github.com/gohango/gohango/internal/models"
)

// restaurantColumns are the shared SELECT columns, with the per-user
// favorite flag as a correlated subquery bound to the first argument.
const restaurantColumns = `
	r.id, r.name, r.cuisine, r.price, r.rating, r.reviews,
	r.distance, r.latitude, r.longitude, r.address, r.image_url, r.created_at,
	EXISTS(SELECT 1 FROM favorites f WHERE f.user_id = ? AND f.restaurant_id = r.id)`

// sortColumns whitelists the ORDER BY targets a client may request.
var sortColumns = map[string]string{
	"rating":   "r.rating",
	"reviews":  "r.reviews",
	"price":    "r.price",
	"distance": "r.distance",
	"name":     "r.name",
	"newest":   "r.created_at",
}

// ListRestaurants returns restaurants matching the filter, flagged with
// whether userID has favorited each. userID 0 (anonymous) flags none.
func (db *DB) ListRestaurants(ctx context.Context, userID int64, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + restaurantColumns + ` FROM restaurants r`)
	args := []interface{}{userID}

	var where []string
	if filter.Query != "" {
		where = append(where, `(r.name LIKE ? OR r.cuisine LIKE ? OR r.address LIKE ?)`)
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if filter.Cuisine != "" {
		where = append(where, `r.cuisine = ?`)
		args = append(args, filter.Cuisine)
	}
	if filter.MaxPrice > 0 {
		where = append(where, `r.price <= ?`)
		args = append(args, filter.MaxPrice)
	}
	if filter.MinRating > 0 {
		where = append(where, `r.rating >= ?`)
		args = append(args, filter.MinRating)
	}
	if filter.MaxDistance > 0 {
		where = append(where, `r.distance IS NOT NULL AND r.distance <= ?`)
		args = append(args, filter.MaxDistance)
	}
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	col, ok := sortColumns[filter.SortBy]
	if !ok {
		col = "r.rating"
	}
	dir := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		dir = "ASC"
	}
	// Secondary key keeps pagination stable across equal sort values.
	fmt.Fprintf(&sb, " ORDER BY %s %s, r.id ASC", col, dir)

	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			sb.WriteString(" OFFSET ?")
			args = append(args, filter.Offset)
		}
	}

	rows, err := db.conn.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer closeQuietly(rows)

	return scanRestaurants(rows)
}

// GetRestaurant returns one restaurant by ID with the per-user favorite
// flag. Returns ErrNotFound when the ID does not exist.
func (db *DB) GetRestaurant(ctx context.Context, userID, restaurantID int64) (*models.Restaurant, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants r WHERE r.id = ?`, userID, restaurantID)

	r, err := scanRestaurant(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return r, nil
}

// ListCuisines returns the distinct cuisines in the catalog with their
// restaurant counts, most common first.
func (db *DB) ListCuisines(ctx context.Context) ([]models.CuisineCount, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT cuisine, COUNT(*) FROM restaurants GROUP BY cuisine ORDER BY COUNT(*) DESC, cuisine ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cuisines: %w", err)
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

// CreateRestaurant inserts a catalog entry and returns it with the
// assigned ID.
func (db *DB) CreateRestaurant(ctx context.Context, r *models.Restaurant) (*models.Restaurant, error) {
	res, err := db.conn.ExecContext(ctx, `
		INSERT INTO restaurants (name, cuisine, price, rating, reviews, distance, latitude, longitude, address, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Name, r.Cuisine, r.Price, r.Rating, r.Reviews,
		r.Distance, r.Latitude, r.Longitude, r.Address, r.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read restaurant id: %w", err)
	}
	return db.GetRestaurant(ctx, 0, id)
}

func scanRestaurants(rows *sql.Rows) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	for rows.Next() {
		r, err := scanRestaurant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, *r)
	}
	return restaurants, rows.Err()
}

func scanRestaurant(scan func(dest ...interface{}) error) (*models.Restaurant, error) {
	var r models.Restaurant
	err := scan(
		&r.ID, &r.Name, &r.Cuisine, &r.Price, &r.Rating, &r.Reviews,
		&r.Distance, &r.Latitude, &r.Longitude, &r.Address, &r.ImageURL, &r.CreatedAt,
		&r.IsFavorite,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
