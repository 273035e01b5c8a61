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

// ListFavorites handles GET /api/favorites.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	favorites, err := h.db.GetFavorites(r.Context(), userID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve favorites", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success   bool              `json:"success"`
		Message   string            `json:"message"`
		Favorites []models.Favorite `json:"favorites"`
		Count     int               `json:"count"`
	}{true, "Favorites retrieved successfully", favorites, len(favorites)})
}

// AddFavorite handles POST /api/favorites/{id}.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.db.AddFavorite(r.Context(), userID, id); err != nil {
		respondStoreError(w, r, err, "Failed to add favorite")
		return
	}
	respondJSON(w, r, http.StatusCreated, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Restaurant added to favorites"})
}

// RemoveFavorite handles DELETE /api/favorites/{id}.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.db.RemoveFavorite(r.Context(), userID, id); err != nil {
		respondStoreError(w, r, err, "Failed to remove favorite")
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Restaurant removed from favorites"})
}

// ToggleFavorite handles PUT /api/favorites/{id}/toggle.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	favorited, err := h.db.ToggleFavorite(r.Context(), userID, id)
	if err != nil {
		respondStoreError(w, r, err, "Failed to toggle favorite")
		return
	}

	message := "Restaurant removed from favorites"
	if favorited {
		message = "Restaurant added to favorites"
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success    bool   `json:"success"`
		Message    string `json:"message"`
		IsFavorite bool   `json:"isFavorite"`
	}{true, message, favorited})
}

// CheckFavorite handles GET /api/favorites/{id}/check.
func (h *Handler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	favorited, err := h.db.IsFavorite(r.Context(), userID, id)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to check favorite", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success    bool `json:"success"`
		IsFavorite bool `json:"isFavorite"`
	}{true, favorited})
}
