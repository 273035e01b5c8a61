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

type reviewRequest struct {
	RestaurantID int64  `json:"restaurantId" validate:"required,gt=0"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"omitempty,max=2000"`
}

// UpsertReview handles POST /api/reviews. Posting a second review of
// the same restaurant updates the existing one.
func (h *Handler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	review, err := h.db.UpsertReview(r.Context(), userID, req.RestaurantID, req.Rating, req.Comment)
	if err != nil {
		respondStoreError(w, r, err, "Failed to save review")
		return
	}
	respondJSON(w, r, http.StatusCreated, struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Review  *models.Review `json:"review"`
	}{true, "Review saved", review})
}

// RestaurantReviews handles GET /api/reviews/restaurant/{restaurantId},
// with rating stats included for the detail screen.
func (h *Handler) RestaurantReviews(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := urlParamID(r, "restaurantId")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	reviews, err := h.db.GetRestaurantReviews(r.Context(), restaurantID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve reviews", err)
		return
	}
	stats, err := h.db.GetRatingStats(r.Context(), restaurantID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve rating stats", err)
		return
	}

	respondJSON(w, r, http.StatusOK, struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Reviews []models.Review     `json:"reviews"`
		Stats   *models.RatingStats `json:"stats"`
		Count   int                 `json:"count"`
	}{true, "Reviews retrieved successfully", reviews, stats, len(reviews)})
}

// MyReviewForRestaurant handles GET /api/reviews/my-review/{restaurantId}.
func (h *Handler) MyReviewForRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := urlParamID(r, "restaurantId")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	reviews, err := h.db.GetUserReviews(r.Context(), userID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve review", err)
		return
	}

	var mine *models.Review
	for i := range reviews {
		if reviews[i].RestaurantID == restaurantID {
			mine = &reviews[i]
			break
		}
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool           `json:"success"`
		Review  *models.Review `json:"review"`
	}{true, mine})
}

// MyReviews handles GET /api/reviews/my-reviews.
func (h *Handler) MyReviews(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	reviews, err := h.db.GetUserReviews(r.Context(), userID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve reviews", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool            `json:"success"`
		Reviews []models.Review `json:"reviews"`
		Count   int             `json:"count"`
	}{true, reviews, len(reviews)})
}

// DeleteReview handles DELETE /api/reviews/{restaurantId}: removes the
// caller's review of that restaurant.
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := urlParamID(r, "restaurantId")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.db.DeleteReview(r.Context(), userID, restaurantID); err != nil {
		respondStoreError(w, r, err, "Failed to delete review")
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Review deleted"})
}
