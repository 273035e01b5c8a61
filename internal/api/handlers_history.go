// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gohango/gohango/internal/middleware"
	"github.com/gohango/gohango/internal/models"
)

type historyListResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	History []models.HistoryEntry `json:"history"`
	Count   int                   `json:"count"`
}

type addHistoryRequest struct {
	RestaurantID int64  `json:"restaurantId" validate:"required,gt=0"`
	Action       string `json:"action" validate:"omitempty,oneof=view search visit order"`
}

// ListHistory handles GET /api/history.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	entries, err := h.db.GetHistory(r.Context(), userID, "", queryInt(r, "limit", 50))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve history", err)
		return
	}
	respondJSON(w, r, http.StatusOK, historyListResponse{
		Success: true, Message: "History retrieved successfully",
		History: entries, Count: len(entries),
	})
}

// ListHistoryByAction handles GET /api/history/by-action/{action}.
func (h *Handler) ListHistoryByAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	if !models.ValidAction(action) {
		respondError(w, r, http.StatusBadRequest, "Invalid action", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	entries, err := h.db.GetHistory(r.Context(), userID, action, queryInt(r, "limit", 50))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve history", err)
		return
	}
	respondJSON(w, r, http.StatusOK, historyListResponse{
		Success: true, Message: "History retrieved successfully",
		History: entries, Count: len(entries),
	})
}

// RecentlyViewed handles GET /api/history/recently-viewed.
func (h *Handler) RecentlyViewed(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	restaurants, err := h.db.GetRecentlyViewed(r.Context(), userID, queryInt(r, "limit", 10))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve recently viewed", err)
		return
	}
	respondJSON(w, r, http.StatusOK, restaurantListResponse{
		Success: true, Message: "Recently viewed retrieved",
		Restaurants: restaurants, Count: len(restaurants),
	})
}

// AddHistory handles POST /api/history.
func (h *Handler) AddHistory(w http.ResponseWriter, r *http.Request) {
	var req addHistoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Action == "" {
		req.Action = models.ActionView
	}

	userID := middleware.UserIDFromContext(r.Context())
	entry, err := h.db.AddHistory(r.Context(), userID, req.RestaurantID, req.Action)
	if err != nil {
		respondStoreError(w, r, err, "Failed to add history")
		return
	}
	respondJSON(w, r, http.StatusCreated, struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Entry   *models.HistoryEntry `json:"entry"`
	}{true, "History recorded", entry})
}

// DeleteHistoryEntry handles DELETE /api/history/{id}.
func (h *Handler) DeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid history ID", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.db.DeleteHistoryEntry(r.Context(), userID, id); err != nil {
		respondStoreError(w, r, err, "Failed to delete history entry")
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "History entry deleted"})
}

// DeleteOldHistory handles DELETE /api/history/old/{days}: removes
// entries older than the given number of days.
func (h *Handler) DeleteOldHistory(w http.ResponseWriter, r *http.Request) {
	days, err := urlParamID(r, "days")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid day count", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	cutoff := time.Now().AddDate(0, 0, -int(days))
	removed, err := h.db.DeleteOldHistory(r.Context(), userID, cutoff)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to delete old history", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Removed int64  `json:"removed"`
	}{true, "Old history deleted", removed})
}

// ClearHistory handles DELETE /api/history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if err := h.db.ClearHistory(r.Context(), userID); err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to clear history", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "History cleared"})
}
