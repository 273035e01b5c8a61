// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package database

import (
	"context"
	"testing"

	"github.com/gohango/gohango/internal/models"
	"github.com/gohango/gohango/internal/recommend"
)

// The DB must satisfy the recommendation engine's provider interface.
var _ recommend.DataProvider = (*DB)(nil)

func TestGetCandidateRestaurants(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := createTestUser(t, db, "alice@example.com")
	good := createTestRestaurant(t, db, models.Restaurant{Name: "Good", Cuisine: "Japanese", Rating: 4.6})
	createTestRestaurant(t, db, models.Restaurant{Name: "Mediocre", Cuisine: "Thai", Rating: 3.2})

	if err := db.AddFavorite(ctx, u.ID, good.ID); err != nil {
		t.Fatal(err)
	}

	candidates, err := db.GetCandidateRestaurants(ctx, u.ID, 4.0)
	if err != nil {
		t.Fatalf("GetCandidateRestaurants: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(candidates), candidates)
	}
	if candidates[0].Name != "Good" || !candidates[0].IsFavorite {
		t.Errorf("candidate = %+v", candidates[0])
	}

	// Anonymous scoring sees no favorites.
	candidates, err = db.GetCandidateRestaurants(ctx, 0, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	if candidates[0].IsFavorite {
		t.Error("favorite flag set for anonymous user")
	}
}

func TestEngineAgainstRealStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.SeedRestaurants(ctx); err != nil {
		t.Fatal(err)
	}
	u := createTestUser(t, db, "alice@example.com")

	cfg := recommend.DefaultConfig()
	cfg.Seed = 7
	eng, err := recommend.NewEngine(cfg, db, db.logger)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	resp, err := eng.Recommend(ctx, recommend.Request{UserID: u.ID})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Recommendations) == 0 {
		t.Fatal("no recommendations from seeded catalog")
	}
	if resp.BasedOn.HasFavorites || resp.BasedOn.HasHistory || resp.BasedOn.HasPreferences {
		t.Errorf("basedOn flags set for fresh user: %+v", resp.BasedOn)
	}

	// Favoriting a Japanese restaurant shifts the affinity signal.
	var japanese int64
	all, err := db.ListRestaurants(ctx, 0, models.RestaurantFilter{Cuisine: "Japanese", Limit: 1})
	if err != nil || len(all) == 0 {
		t.Fatalf("ListRestaurants(Japanese): %v", err)
	}
	japanese = all[0].ID
	if err := db.AddFavorite(ctx, u.ID, japanese); err != nil {
		t.Fatal(err)
	}

	resp, err = eng.Recommend(ctx, recommend.Request{UserID: u.ID})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.BasedOn.HasFavorites {
		t.Error("HasFavorites not set after favoriting")
	}
}
