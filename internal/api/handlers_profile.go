// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"net/http"

	"github.com/gohango/gohango/internal/middleware"
	"github.com/gohango/gohango/internal/models"
)

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

type preferencesRequest struct {
	MaxDistance  *int     `json:"maxDistance" validate:"omitempty,gte=0,lte=10000"`
	MaxWalkTime  *int     `json:"maxWalkTime" validate:"omitempty,gte=0,lte=120"`
	CuisineTypes []string `json:"cuisineTypes" validate:"omitempty,max=20,dive,min=1,max=50"`
	PriceRange   *[2]int  `json:"priceRange" validate:"omitempty"`
}

// GetProfile handles GET /api/profile: the user plus their stored
// preferences and activity counts, in one round trip for the profile
// screen.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserIDFromContext(ctx)
	user, err := h.db.GetUserByID(ctx, userID)
	if err != nil {
		respondStoreError(w, r, err, "Failed to retrieve profile")
		return
	}
	prefs, err := h.db.GetUserPreferences(ctx, userID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve profile", err)
		return
	}
	stats, err := h.db.GetProfileStats(ctx, userID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve profile", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success     bool                 `json:"success"`
		User        *models.User         `json:"user"`
		Preferences *models.Preferences  `json:"preferences"`
		Stats       *models.ProfileStats `json:"stats"`
	}{true, user, prefs, stats})
}

// UpdateProfile handles PUT /api/profile. Changing email fails with a
// conflict when the address is already taken.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.db.UpdateUserProfile(r.Context(), userID, req.Name, req.Email); err != nil {
		respondStoreError(w, r, err, "Failed to update profile")
		return
	}
	user, err := h.db.GetUserByID(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "Failed to update profile")
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}{true, "Profile updated", user})
}

// GetProfileStats handles GET /api/profile/stats.
func (h *Handler) GetProfileStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	stats, err := h.db.GetProfileStats(r.Context(), userID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve stats", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool                 `json:"success"`
		Stats   *models.ProfileStats `json:"stats"`
	}{true, stats})
}

// GetPreferences handles GET /api/profile/preferences. Users without
// saved preferences get the defaults.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	prefs, err := h.db.GetUserPreferences(r.Context(), userID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve preferences", err)
		return
	}
	isDefault := prefs == nil
	if isDefault {
		prefs = models.DefaultPreferences()
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success     bool                `json:"success"`
		Preferences *models.Preferences `json:"preferences"`
		IsDefault   bool                `json:"isDefault"`
	}{true, prefs, isDefault})
}

// SavePreferences handles PUT /api/profile/preferences.
func (h *Handler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prefs := &models.Preferences{
		MaxDistance:  req.MaxDistance,
		MaxWalkTime:  req.MaxWalkTime,
		CuisineTypes: req.CuisineTypes,
	}
	if req.PriceRange != nil {
		pr := models.PriceRange{Min: req.PriceRange[0], Max: req.PriceRange[1]}
		if pr.Min < 1 || pr.Max > 3 || pr.Min > pr.Max {
			respondError(w, r, http.StatusBadRequest, "priceRange must be an ascending pair within 1-3", nil)
			return
		}
		prefs.PriceRange = &pr
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.db.SaveUserPreferences(r.Context(), userID, prefs); err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to save preferences", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success     bool                `json:"success"`
		Message     string              `json:"message"`
		Preferences *models.Preferences `json:"preferences"`
	}{true, "Preferences saved", prefs})
}

// DeletePreferences handles DELETE /api/profile/preferences: resets the
// user back to defaults.
func (h *Handler) DeletePreferences(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if err := h.db.DeleteUserPreferences(r.Context(), userID); err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to reset preferences", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Preferences reset to defaults"})
}
