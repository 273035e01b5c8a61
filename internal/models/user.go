// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package models

import "time"

// User is a registered account. The password hash never leaves the
// server; the json tag excludes it from every response.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Favorite is a favorites row joined with its restaurant for list
// responses.
type Favorite struct {
	Restaurant
	FavoritedAt time.Time `json:"favoritedAt"`
}

// HistoryAction classifies a history entry.
const (
	ActionView   = "view"
	ActionSearch = "search"
	ActionVisit  = "visit"
	ActionOrder  = "order"
)

// ValidAction reports whether action is one of the recognized history
// actions.
func ValidAction(action string) bool {
	switch action {
	case ActionView, ActionSearch, ActionVisit, ActionOrder:
		return true
	}
	return false
}

// HistoryEntry is a history row joined with its restaurant.
type HistoryEntry struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	Action       string    `json:"action"`
	CreatedAt    time.Time `json:"createdAt"`

	RestaurantName string  `json:"restaurantName"`
	Cuisine        string  `json:"cuisine"`
	Price          int     `json:"price"`
	Rating         float64 `json:"rating"`
	ImageURL       string  `json:"imageUrl,omitempty"`
}

// Review is a user's rating of a restaurant. One review per user per
// restaurant; posting again updates the existing row.
type Review struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	RestaurantID int64     `json:"restaurantId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`

	// UserName is joined for restaurant review listings.
	UserName string `json:"userName,omitempty"`
	// RestaurantName is joined for per-user review listings.
	RestaurantName string `json:"restaurantName,omitempty"`
}

// ProfileStats are the activity counters on the profile screen.
type ProfileStats struct {
	FavoritesCount int `json:"favoritesCount"`
	HistoryCount   int `json:"historyCount"`
	ReviewsCount   int `json:"reviewsCount"`
}

// RatingStats summarizes the reviews of one restaurant.
type RatingStats struct {
	AverageRating float64     `json:"averageRating"`
	TotalReviews  int         `json:"totalReviews"`
	Distribution  map[int]int `json:"distribution"`
}
