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

// seedCatalog is the bundled Hanoi demo catalog, loaded into an empty
// database on startup when seeding is enabled.
var seedCatalog = []models.Restaurant{
	{
		Name: "Pho Thin Lo Duc", Cuisine: "Vietnamese", Price: 1, Rating: 4.6, Reviews: 812,
		Latitude: ptr(21.0136), Longitude: ptr(105.8544),
		Address: "13 Lo Duc, Hai Ba Trung, Hanoi",
	},
	{
		Name: "Bun Cha Huong Lien", Cuisine: "Vietnamese", Price: 1, Rating: 4.4, Reviews: 1204,
		Latitude: ptr(21.0125), Longitude: ptr(105.8507),
		Address: "24 Le Van Huu, Hai Ba Trung, Hanoi",
	},
	{
		Name: "Pizza 4P's Trang Tien", Cuisine: "Italian", Price: 3, Rating: 4.8, Reviews: 956,
		Latitude: ptr(21.0245), Longitude: ptr(105.8559),
		Address: "43 Trang Tien, Hoan Kiem, Hanoi",
	},
	{
		Name: "Lau Nam Gia Khanh", Cuisine: "Hotpot", Price: 2, Rating: 4.3, Reviews: 389,
		Latitude: ptr(21.0114), Longitude: ptr(105.8498),
		Address: "152 Hue Street, Hai Ba Trung, Hanoi",
	},
	{
		Name: "Egg Coffee Giang", Cuisine: "Cafe", Price: 1, Rating: 4.7, Reviews: 2150,
		Latitude: ptr(21.0333), Longitude: ptr(105.8528),
		Address: "39 Nguyen Huu Huan, Hoan Kiem, Hanoi",
	},
	{
		Name: "Cha Ca La Vong", Cuisine: "Vietnamese", Price: 2, Rating: 4.1, Reviews: 674,
		Latitude: ptr(21.0352), Longitude: ptr(105.8487),
		Address: "14 Cha Ca, Hoan Kiem, Hanoi",
	},
	{
		Name: "Highway4 Hang Tre", Cuisine: "Fusion", Price: 2, Rating: 4.5, Reviews: 441,
		Latitude: ptr(21.0321), Longitude: ptr(105.8556),
		Address: "25 Hang Tre, Hoan Kiem, Hanoi",
	},
	{
		Name: "Sushi Kei Hoan Kiem", Cuisine: "Japanese", Price: 3, Rating: 4.9, Reviews: 287,
		Latitude: ptr(21.0301), Longitude: ptr(105.8532),
		Address: "12 Ly Thai To, Hoan Kiem, Hanoi",
	},
	{
		Name: "Ramen Tatsu West Lake", Cuisine: "Japanese", Price: 2, Rating: 4.6, Reviews: 519,
		Latitude: ptr(21.0658), Longitude: ptr(105.8232),
		Address: "101 Trich Sai, Tay Ho, Hanoi",
	},
	{
		Name: "Izakaya Hanami Cau Giay", Cuisine: "Japanese", Price: 2, Rating: 4.2, Reviews: 198,
		Latitude: ptr(21.0362), Longitude: ptr(105.7906),
		Address: "25 Tran Thai Tong, Cau Giay, Hanoi",
	},
}

func ptr[T any](v T) *T { return &v }

// SeedRestaurants inserts the demo catalog if the restaurants table is
// empty. Idempotent; an already-populated catalog is left untouched.
func (db *DB) SeedRestaurants(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO restaurants (name, cuisine, price, rating, reviews, latitude, longitude, address, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, r := range seedCatalog {
		if _, err := stmt.ExecContext(ctx,
			r.Name, r.Cuisine, r.Price, r.Rating, r.Reviews,
			r.Latitude, r.Longitude, r.Address, r.ImageURL,
		); err != nil {
			return fmt.Errorf("failed to seed %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	db.logger.Info().Int("restaurants", len(seedCatalog)).Msg("seeded demo catalog")
	return nil
}
