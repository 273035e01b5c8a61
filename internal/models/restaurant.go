// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

// Package models defines the domain entities and API payload shapes
// shared across the database, recommendation, and HTTP layers.
package models

import "time"

// Restaurant is a single catalog entry.
//
// Latitude/Longitude are optional; the seeded catalog carries them but
// user-submitted entries may not. Distance is the static walking distance
// in meters measured from the city center; the recommendation engine
// overwrites it with the live GPS distance when the caller supplies
// coordinates.
type Restaurant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Cuisine   string    `json:"cuisine"`
	Price     int       `json:"price"`
	Rating    float64   `json:"rating"`
	Reviews   int       `json:"reviews"`
	Distance  *int      `json:"distance,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Address   string    `json:"address,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// IsFavorite is computed per requesting user, not stored.
	IsFavorite bool `json:"isFavorite"`
}

// ScoredRestaurant is a restaurant annotated with its recommendation
// score and the human-readable reasons behind it.
type ScoredRestaurant struct {
	Restaurant
	RecommendationScore   float64  `json:"recommendationScore"`
	RecommendationReasons []string `json:"recommendationReasons"`
}

// RestaurantFilter narrows restaurant list queries.
type RestaurantFilter struct {
	Query       string
	Cuisine     string
	MaxDistance int
	MaxPrice    int
	MinRating   float64
	SortBy      string
	Order       string
	Limit       int
	Offset      int
}

// CuisineCount is a favorite-cuisine aggregation row: how many of the
// user's favorites share a cuisine.
type CuisineCount struct {
	Cuisine string `json:"cuisine"`
	Count   int    `json:"count"`
}

// HistoryStats is a visit-history aggregation row for one restaurant.
type HistoryStats struct {
	RestaurantID int64   `json:"restaurantId"`
	Cuisine      string  `json:"cuisine"`
	Price        int     `json:"price"`
	Rating       float64 `json:"rating"`
	VisitCount   int     `json:"visitCount"`
}
