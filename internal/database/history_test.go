// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gohango/gohango/internal/models"
)

func TestAddAndGetHistory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := createTestUser(t, db, "alice@example.com")
	r := createTestRestaurant(t, db, models.Restaurant{Name: "Sakura Sushi", Cuisine: "Japanese", Price: 3, Rating: 4.8})

	entry, err := db.AddHistory(ctx, u.ID, r.ID, models.ActionView)
	if err != nil {
		t.Fatalf("AddHistory: %v", err)
	}
	if entry.RestaurantName != "Sakura Sushi" || entry.Action != models.ActionView {
		t.Errorf("entry = %+v", entry)
	}

	if _, err := db.AddHistory(ctx, u.ID, 99999, models.ActionView); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing restaurant err = %v, want ErrNotFound", err)
	}

	if _, err := db.AddHistory(ctx, u.ID, r.ID, models.ActionVisit); err != nil {
		t.Fatal(err)
	}

	all, err := db.GetHistory(ctx, u.ID, "", 0)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d entries, want 2", len(all))
	}
	// Newest first.
	if all[0].Action != models.ActionVisit {
		t.Errorf("first entry action = %q, want visit", all[0].Action)
	}

	views, err := db.GetHistory(ctx, u.ID, models.ActionView, 0)
	if err != nil {
		t.Fatalf("GetHistory(view): %v", err)
	}
	if len(views) != 1 || views[0].Action != models.ActionView {
		t.Errorf("filtered entries = %+v", views)
	}

	limited, err := db.GetHistory(ctx, u.ID, "", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d entries", len(limited))
	}
}

func TestGetRecentlyViewedDeduplicates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := createTestUser(t, db, "alice@example.com")
	a := createTestRestaurant(t, db, models.Restaurant{Name: "A", Cuisine: "Japanese", Rating: 4.0})
	b := createTestRestaurant(t, db, models.Restaurant{Name: "B", Cuisine: "Thai", Rating: 4.5})

	for _, id := range []int64{a.ID, b.ID, a.ID} {
		if _, err := db.AddHistory(ctx, u.ID, id, models.ActionView); err != nil {
			t.Fatal(err)
		}
	}
	// Non-view actions are excluded.
	if _, err := db.AddHistory(ctx, u.ID, b.ID, models.ActionOrder); err != nil {
		t.Fatal(err)
	}

	viewed, err := db.GetRecentlyViewed(ctx, u.ID, 10)
	if err != nil {
		t.Fatalf("GetRecentlyViewed: %v", err)
	}
	if len(viewed) != 2 {
		t.Fatalf("got %d restaurants, want 2 deduplicated: %+v", len(viewed), viewed)
	}
}

func TestDeleteHistoryEntry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	r := createTestRestaurant(t, db, models.Restaurant{Name: "A", Cuisine: "Japanese", Rating: 4.0})

	entry, err := db.AddHistory(ctx, alice.ID, r.ID, models.ActionView)
	if err != nil {
		t.Fatal(err)
	}

	// Another user cannot delete it.
	if err := db.DeleteHistoryEntry(ctx, bob.ID, entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user delete err = %v, want ErrNotFound", err)
	}

	if err := db.DeleteHistoryEntry(ctx, alice.ID, entry.ID); err != nil {
		t.Fatalf("DeleteHistoryEntry: %v", err)
	}
	if err := db.DeleteHistoryEntry(ctx, alice.ID, entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}
}

func TestDeleteOldHistory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := createTestUser(t, db, "alice@example.com")
	r := createTestRestaurant(t, db, models.Restaurant{Name: "A", Cuisine: "Japanese", Rating: 4.0})

	if _, err := db.AddHistory(ctx, u.ID, r.ID, models.ActionView); err != nil {
		t.Fatal(err)
	}

	// Cutoff in the past removes nothing.
	n, err := db.DeleteOldHistory(ctx, u.ID, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteOldHistory: %v", err)
	}
	if n != 0 {
		t.Errorf("removed %d entries with past cutoff, want 0", n)
	}

	// Cutoff in the future removes the entry.
	n, err = db.DeleteOldHistory(ctx, u.ID, time.Now().Add(24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("removed %d entries, want 1", n)
	}
}

func TestClearHistory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := createTestUser(t, db, "alice@example.com")
	r := createTestRestaurant(t, db, models.Restaurant{Name: "A", Cuisine: "Japanese", Rating: 4.0})

	for i := 0; i < 3; i++ {
		if _, err := db.AddHistory(ctx, u.ID, r.ID, models.ActionView); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.ClearHistory(ctx, u.ID); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	entries, err := db.GetHistory(ctx, u.ID, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("history not cleared: %d entries remain", len(entries))
	}
}

func TestGetHistoryAggregate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := createTestUser(t, db, "alice@example.com")
	a := createTestRestaurant(t, db, models.Restaurant{Name: "A", Cuisine: "Japanese", Price: 2, Rating: 4.0})
	b := createTestRestaurant(t, db, models.Restaurant{Name: "B", Cuisine: "Thai", Price: 1, Rating: 4.5})

	visits := []int64{a.ID, a.ID, a.ID, b.ID}
	for _, id := range visits {
		if _, err := db.AddHistory(ctx, u.ID, id, models.ActionVisit); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := db.GetHistoryAggregate(ctx, u.ID, 10)
	if err != nil {
		t.Fatalf("GetHistoryAggregate: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d rows, want 2: %+v", len(stats), stats)
	}
	top := stats[0]
	if top.RestaurantID != a.ID || top.VisitCount != 3 || top.Cuisine != "Japanese" || top.Price != 2 {
		t.Errorf("top aggregate = %+v", top)
	}
}
