// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gohango/gohango/internal/auth"
	"github.com/gohango/gohango/internal/config"
	"github.com/gohango/gohango/internal/database"
	"github.com/gohango/gohango/internal/recommend"
)

// newTestServer wires the full stack against an in-memory database with
// the demo catalog seeded, mirroring production startup.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Path = ":memory:"
	cfg.Security.JWTSecret = "router-test-secret-at-least-32-chars-long"
	cfg.Security.BcryptCost = bcrypt.MinCost
	cfg.Security.RateLimitReqs = 1000

	logger := zerolog.Nop()

	db, err := database.Open(&cfg.Database, logger)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := db.SeedRestaurants(ctx); err != nil {
		t.Fatalf("seed restaurants: %v", err)
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("jwt manager: %v", err)
	}
	hasher, err := auth.NewPasswordHasher(cfg.Security.BcryptCost)
	if err != nil {
		t.Fatalf("password hasher: %v", err)
	}
	engine, err := recommend.NewEngine(nil, db, logger)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	h := NewHandler(cfg, db, engine, jwtManager, hasher, logger)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv
}

// doJSON issues a request with an optional JSON body and bearer token,
// decoding the response body into out when out is non-nil.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body, out interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return resp
}

// registerUser creates an account and returns its session token.
func registerUser(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	httpResp := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	}, &resp)
	if httpResp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want %d", httpResp.StatusCode, http.StatusCreated)
	}
	if !resp.Success || resp.Token == "" {
		t.Fatalf("register response = %+v, want success with token", resp)
	}
	return resp.Token
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Success bool   `json:"success"`
		Status  string `json:"status"`
	}
	resp := doJSON(t, srv, http.MethodGet, "/api/health", "", nil, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !body.Success || body.Status != "ok" {
		t.Errorf("body = %+v, want success with status ok", body)
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	srv := newTestServer(t)
	registerUser(t, srv, "flow@example.com")

	t.Run("duplicate email rejected", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
			"name":     "Test User",
			"email":    "flow@example.com",
			"password": "secret123",
		}, nil)
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("status = %d, want 409", resp.StatusCode)
		}
	})

	t.Run("login with correct password", func(t *testing.T) {
		var body struct {
			Success bool   `json:"success"`
			Token   string `json:"token"`
		}
		resp := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "flow@example.com",
			"password": "secret123",
		}, &body)
		if resp.StatusCode != http.StatusOK || body.Token == "" {
			t.Errorf("status = %d, token present = %v; want 200 with token", resp.StatusCode, body.Token != "")
		}
	})

	t.Run("wrong password and unknown email use same message", func(t *testing.T) {
		var wrongPass, unknown struct {
			Message string `json:"message"`
		}
		r1 := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "flow@example.com", "password": "not-the-password",
		}, &wrongPass)
		r2 := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "nobody@example.com", "password": "secret123",
		}, &unknown)
		if r1.StatusCode != http.StatusUnauthorized || r2.StatusCode != http.StatusUnauthorized {
			t.Fatalf("statuses = %d, %d; want 401, 401", r1.StatusCode, r2.StatusCode)
		}
		if wrongPass.Message != unknown.Message {
			t.Errorf("messages differ (%q vs %q); credential probing must be indistinguishable", wrongPass.Message, unknown.Message)
		}
	})

	t.Run("invalid body rejected", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
			"name": "X", "email": "not-an-email", "password": "123",
		}, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestAuthMe(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "me@example.com")

	var body struct {
		Success bool `json:"success"`
		User    *struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	resp := doJSON(t, srv, http.MethodGet, "/api/auth/me", token, nil, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body.User == nil || body.User.Email != "me@example.com" {
		t.Errorf("user = %+v, want me@example.com", body.User)
	}

	if resp := doJSON(t, srv, http.MethodGet, "/api/auth/me", "", nil, nil); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", resp.StatusCode)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/favorites/"},
		{http.MethodGet, "/api/history/"},
		{http.MethodGet, "/api/profile/"},
		{http.MethodGet, "/api/recommendations"},
		{http.MethodPost, "/api/reviews/"},
	}
	for _, p := range paths {
		resp := doJSON(t, srv, p.method, p.path, "", nil, nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", p.method, p.path, resp.StatusCode)
		}
	}
}

func TestListRestaurants(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Success     bool `json:"success"`
		Count       int  `json:"count"`
		Restaurants []struct {
			ID         int64  `json:"id"`
			Name       string `json:"name"`
			IsFavorite bool   `json:"isFavorite"`
		} `json:"restaurants"`
	}
	resp := doJSON(t, srv, http.MethodGet, "/api/restaurants/", "", nil, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body.Count == 0 || len(body.Restaurants) != body.Count {
		t.Fatalf("count = %d with %d restaurants; want seeded catalog", body.Count, len(body.Restaurants))
	}
	for _, r := range body.Restaurants {
		if r.IsFavorite {
			t.Errorf("restaurant %d favorited for anonymous caller", r.ID)
		}
	}
}

func TestSearchAndFilters(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Restaurants []struct {
			Cuisine string `json:"cuisine"`
		} `json:"restaurants"`
	}
	resp := doJSON(t, srv, http.MethodGet, "/api/restaurants/search?cuisine=Japanese", "", nil, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(body.Restaurants) == 0 {
		t.Fatal("no Japanese restaurants in seeded catalog")
	}
	for _, r := range body.Restaurants {
		if r.Cuisine != "Japanese" {
			t.Errorf("cuisine = %q leaked through filter", r.Cuisine)
		}
	}
}

func TestGetRestaurantRecordsView(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "viewer@example.com")

	if resp := doJSON(t, srv, http.MethodGet, "/api/restaurants/1", token, nil, nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("get restaurant status = %d, want 200", resp.StatusCode)
	}

	var history struct {
		History []struct {
			RestaurantID int64  `json:"restaurantId"`
			Action       string `json:"action"`
		} `json:"history"`
	}
	doJSON(t, srv, http.MethodGet, "/api/history/", token, nil, &history)
	if len(history.History) != 1 || history.History[0].RestaurantID != 1 || history.History[0].Action != "view" {
		t.Errorf("history = %+v, want single view of restaurant 1", history.History)
	}
}

func TestGetRestaurantNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/api/restaurants/99999", "", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestFavoritesLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "fav@example.com")

	if resp := doJSON(t, srv, http.MethodPost, "/api/favorites/2", token, nil, nil); resp.StatusCode != http.StatusCreated {
		t.Fatalf("add favorite status = %d, want 201", resp.StatusCode)
	}
	if resp := doJSON(t, srv, http.MethodPost, "/api/favorites/2", token, nil, nil); resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate favorite status = %d, want 409", resp.StatusCode)
	}

	var check struct {
		IsFavorite bool `json:"isFavorite"`
	}
	doJSON(t, srv, http.MethodGet, "/api/favorites/2/check", token, nil, &check)
	if !check.IsFavorite {
		t.Error("check reports not favorited after add")
	}

	// The personalized flag must show up on catalog reads too.
	var detail struct {
		Restaurant struct {
			IsFavorite bool `json:"isFavorite"`
		} `json:"restaurant"`
	}
	doJSON(t, srv, http.MethodGet, "/api/restaurants/2", token, nil, &detail)
	if !detail.Restaurant.IsFavorite {
		t.Error("catalog read missing favorite flag")
	}

	var toggled struct {
		IsFavorite bool `json:"isFavorite"`
	}
	doJSON(t, srv, http.MethodPut, "/api/favorites/2/toggle", token, nil, &toggled)
	if toggled.IsFavorite {
		t.Error("toggle should have removed the favorite")
	}

	if resp := doJSON(t, srv, http.MethodDelete, "/api/favorites/2", token, nil, nil); resp.StatusCode != http.StatusNotFound {
		t.Errorf("remove absent favorite status = %d, want 404", resp.StatusCode)
	}

	if resp := doJSON(t, srv, http.MethodPost, "/api/favorites/99999", token, nil, nil); resp.StatusCode != http.StatusNotFound {
		t.Errorf("favorite unknown restaurant status = %d, want 404", resp.StatusCode)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "hist@example.com")

	for _, req := range []map[string]interface{}{
		{"restaurantId": 1, "action": "view"},
		{"restaurantId": 1, "action": "view"},
		{"restaurantId": 3, "action": "visit"},
	} {
		if resp := doJSON(t, srv, http.MethodPost, "/api/history/", token, req, nil); resp.StatusCode != http.StatusCreated {
			t.Fatalf("add history status = %d, want 201", resp.StatusCode)
		}
	}

	var all struct {
		History []struct {
			ID int64 `json:"id"`
		} `json:"history"`
	}
	doJSON(t, srv, http.MethodGet, "/api/history/", token, nil, &all)
	if len(all.History) != 3 {
		t.Fatalf("history length = %d, want 3", len(all.History))
	}

	var visits struct {
		History []struct {
			Action string `json:"action"`
		} `json:"history"`
	}
	doJSON(t, srv, http.MethodGet, "/api/history/by-action/visit", token, nil, &visits)
	if len(visits.History) != 1 || visits.History[0].Action != "visit" {
		t.Errorf("visit history = %+v, want one visit entry", visits.History)
	}

	if resp := doJSON(t, srv, http.MethodGet, "/api/history/by-action/bogus", token, nil, nil); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown action status = %d, want 400", resp.StatusCode)
	}

	// Duplicate views collapse to the most recent one.
	var recent struct {
		History []struct {
			RestaurantID int64 `json:"restaurantId"`
		} `json:"history"`
	}
	doJSON(t, srv, http.MethodGet, "/api/history/recently-viewed", token, nil, &recent)
	if len(recent.History) != 1 || recent.History[0].RestaurantID != 1 {
		t.Errorf("recently viewed = %+v, want deduplicated view of restaurant 1", recent.History)
	}

	doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/history/%d", all.History[0].ID), token, nil, nil)
	doJSON(t, srv, http.MethodDelete, "/api/history/", token, nil, nil)

	doJSON(t, srv, http.MethodGet, "/api/history/", token, nil, &all)
	if len(all.History) != 0 {
		t.Errorf("history length after clear = %d, want 0", len(all.History))
	}
}

func TestProfileAndPreferences(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "prof@example.com")

	t.Run("update name", func(t *testing.T) {
		var body struct {
			User struct {
				Name string `json:"name"`
			} `json:"user"`
		}
		resp := doJSON(t, srv, http.MethodPut, "/api/profile/", token, map[string]string{"name": "Renamed"}, &body)
		if resp.StatusCode != http.StatusOK || body.User.Name != "Renamed" {
			t.Errorf("status = %d, name = %q; want 200 with Renamed", resp.StatusCode, body.User.Name)
		}
	})

	t.Run("email change to taken address conflicts", func(t *testing.T) {
		registerUser(t, srv, "taken@example.com")
		resp := doJSON(t, srv, http.MethodPut, "/api/profile/", token, map[string]string{
			"name": "Renamed", "email": "taken@example.com",
		}, nil)
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("status = %d, want 409", resp.StatusCode)
		}
	})

	t.Run("profile bundles user, preferences, and stats", func(t *testing.T) {
		var body struct {
			Success bool `json:"success"`
			User    *struct {
				Name string `json:"name"`
			} `json:"user"`
			Stats *struct {
				FavoritesCount int `json:"favoritesCount"`
			} `json:"stats"`
		}
		resp := doJSON(t, srv, http.MethodGet, "/api/profile/", token, nil, &body)
		if resp.StatusCode != http.StatusOK || body.User == nil || body.Stats == nil {
			t.Errorf("status = %d body = %+v, want user and stats present", resp.StatusCode, body)
		}
	})

	t.Run("default preferences until saved", func(t *testing.T) {
		var body struct {
			IsDefault   bool `json:"isDefault"`
			Preferences struct {
				MaxDistance float64 `json:"maxDistance"`
			} `json:"preferences"`
		}
		doJSON(t, srv, http.MethodGet, "/api/profile/preferences", token, nil, &body)
		if !body.IsDefault {
			t.Error("fresh account should report default preferences")
		}
	})

	t.Run("save and read back", func(t *testing.T) {
		req := map[string]interface{}{
			"maxDistance":  2500,
			"maxWalkTime":  20,
			"cuisineTypes": []string{"Japanese", "Vietnamese"},
			"priceRange":   []int{1, 2},
		}
		if resp := doJSON(t, srv, http.MethodPut, "/api/profile/preferences", token, req, nil); resp.StatusCode != http.StatusOK {
			t.Fatalf("save status = %d, want 200", resp.StatusCode)
		}

		var body struct {
			IsDefault   bool `json:"isDefault"`
			Preferences struct {
				MaxDistance  float64  `json:"maxDistance"`
				CuisineTypes []string `json:"cuisineTypes"`
			} `json:"preferences"`
		}
		doJSON(t, srv, http.MethodGet, "/api/profile/preferences", token, nil, &body)
		if body.IsDefault {
			t.Error("saved preferences still reported as default")
		}
		if body.Preferences.MaxDistance != 2500 || len(body.Preferences.CuisineTypes) != 2 {
			t.Errorf("preferences = %+v, want saved values", body.Preferences)
		}
	})

	t.Run("recommendation screen alias routes", func(t *testing.T) {
		var body struct {
			Preferences struct {
				MaxDistance float64 `json:"maxDistance"`
			} `json:"preferences"`
		}
		resp := doJSON(t, srv, http.MethodGet, "/api/recommendations/preferences", token, nil, &body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get status = %d, want 200", resp.StatusCode)
		}
		if resp := doJSON(t, srv, http.MethodPost, "/api/recommendations/preferences", token, map[string]interface{}{
			"maxDistance": 800,
		}, nil); resp.StatusCode != http.StatusOK {
			t.Errorf("post status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("invalid price range rejected", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodPut, "/api/profile/preferences", token, map[string]interface{}{
			"priceRange": []int{3, 1},
		}, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("stats reflect activity", func(t *testing.T) {
		doJSON(t, srv, http.MethodPost, "/api/favorites/1", token, nil, nil)
		doJSON(t, srv, http.MethodPost, "/api/history/", token, map[string]interface{}{"restaurantId": 1}, nil)

		var body struct {
			Stats struct {
				FavoritesCount int `json:"favoritesCount"`
				HistoryCount   int `json:"historyCount"`
			} `json:"stats"`
		}
		doJSON(t, srv, http.MethodGet, "/api/profile/stats", token, nil, &body)
		if body.Stats.FavoritesCount != 1 || body.Stats.HistoryCount != 1 {
			t.Errorf("stats = %+v, want one favorite and one history entry", body.Stats)
		}
	})
}

func TestReviewsLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "rev@example.com")

	review := map[string]interface{}{"restaurantId": 1, "rating": 5, "comment": "Outstanding pho"}
	if resp := doJSON(t, srv, http.MethodPost, "/api/reviews/", token, review, nil); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create review status = %d, want 201", resp.StatusCode)
	}

	// Upsert: second submission replaces, not duplicates.
	review["rating"] = 3
	if resp := doJSON(t, srv, http.MethodPost, "/api/reviews/", token, review, nil); resp.StatusCode != http.StatusCreated {
		t.Fatalf("upsert review status = %d, want 201", resp.StatusCode)
	}

	var mine struct {
		Review *struct {
			Rating int `json:"rating"`
		} `json:"review"`
	}
	doJSON(t, srv, http.MethodGet, "/api/reviews/my-review/1", token, nil, &mine)
	if mine.Review == nil || mine.Review.Rating != 3 {
		t.Errorf("my review = %+v, want rating 3 after upsert", mine.Review)
	}

	var public struct {
		Reviews []struct {
			UserName string `json:"userName"`
		} `json:"reviews"`
		Stats struct {
			TotalReviews int `json:"totalReviews"`
		} `json:"stats"`
	}
	doJSON(t, srv, http.MethodGet, "/api/reviews/restaurant/1", "", nil, &public)
	if len(public.Reviews) != 1 || public.Stats.TotalReviews != 1 {
		t.Errorf("public reviews = %+v stats = %+v, want single review", public.Reviews, public.Stats)
	}

	if resp := doJSON(t, srv, http.MethodDelete, "/api/reviews/1", token, nil, nil); resp.StatusCode != http.StatusOK {
		t.Errorf("delete review status = %d, want 200", resp.StatusCode)
	}
	doJSON(t, srv, http.MethodGet, "/api/reviews/my-review/1", token, nil, &mine)
	if mine.Review != nil {
		t.Errorf("review survived deletion: %+v", mine.Review)
	}
}

func TestRecommendations(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "reco@example.com")

	var body struct {
		Success         bool `json:"success"`
		Recommendations []struct {
			ID      int64    `json:"id"`
			Score   float64  `json:"recommendationScore"`
			Reasons []string `json:"recommendationReasons"`
		} `json:"recommendations"`
		BasedOn struct {
			HasFavorites   bool `json:"hasFavorites"`
			HasPreferences bool `json:"hasPreferences"`
		} `json:"basedOn"`
	}
	resp := doJSON(t, srv, http.MethodGet, "/api/recommendations", token, nil, &body)
	if resp.StatusCode != http.StatusOK || !body.Success {
		t.Fatalf("status = %d success = %v, want 200 success", resp.StatusCode, body.Success)
	}
	if len(body.Recommendations) == 0 {
		t.Fatal("empty recommendations against seeded catalog")
	}
	for i := 1; i < len(body.Recommendations); i++ {
		if body.Recommendations[i].Score > body.Recommendations[i-1].Score {
			t.Errorf("recommendations not sorted: score %f after %f",
				body.Recommendations[i].Score, body.Recommendations[i-1].Score)
		}
	}
	if body.BasedOn.HasFavorites || body.BasedOn.HasPreferences {
		t.Errorf("basedOn = %+v for a fresh account, want all flags false", body.BasedOn)
	}

	t.Run("with location", func(t *testing.T) {
		// Hoan Kiem lake, central Hanoi; close enough to the seeded
		// catalog that distance reasons appear.
		resp := doJSON(t, srv, http.MethodGet, "/api/recommendations?latitude=21.0285&longitude=105.8542", token, nil, &body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		found := false
		for _, rec := range body.Recommendations {
			for _, reason := range rec.Reasons {
				if reason == "Very close to you" || reason == "Within walking distance" ||
					reason == "Nearby location" || reason == "Short distance away" {
					found = true
				}
			}
		}
		if !found {
			t.Error("no distance reasons produced for central Hanoi coordinates")
		}
	})

	t.Run("latitude without longitude rejected", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodGet, "/api/recommendations?latitude=21.0285", token, nil, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("out of range coordinates rejected", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodGet, "/api/recommendations?latitude=91&longitude=0", token, nil, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestUnknownRouteEnvelope(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	resp := doJSON(t, srv, http.MethodGet, "/api/nope", "", nil, &body)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if body.Success || body.Message == "" {
		t.Errorf("body = %+v, want envelope with success=false and message", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
