// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package models

// APIError is the uniform error envelope. Every failed request returns
// {"success": false, "message": "..."}.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BasedOn reports which personalization signals were available when a
// recommendation list was produced. The flags reflect the raw inputs,
// not whether any restaurant actually matched them.
type BasedOn struct {
	HasFavorites   bool `json:"hasFavorites"`
	HasHistory     bool `json:"hasHistory"`
	HasPreferences bool `json:"hasPreferences"`
}

// RecommendationsResponse is the GET /api/recommendations payload.
type RecommendationsResponse struct {
	Success         bool               `json:"success"`
	Recommendations []ScoredRestaurant `json:"recommendations"`
	BasedOn         BasedOn            `json:"basedOn"`
}

// AuthResponse carries a user plus session token after register/login.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}
