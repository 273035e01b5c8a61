// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"net/http"
	"sort"

	"github.com/gohango/gohango/internal/middleware"
	"github.com/gohango/gohango/internal/models"
	"github.com/gohango/gohango/internal/recommend"
)

type restaurantListResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Restaurants []models.Restaurant `json:"restaurants"`
	Count       int                 `json:"count"`
}

func (h *Handler) listFilter(r *http.Request) models.RestaurantFilter {
	q := r.URL.Query()
	limit := queryInt(r, "limit", h.cfg.API.DefaultPageSize)
	if limit > h.cfg.API.MaxPageSize {
		limit = h.cfg.API.MaxPageSize
	}
	minRating := 0.0
	if v := queryFloat(r, "minRating"); v != nil {
		minRating = *v
	}
	return models.RestaurantFilter{
		Query:       q.Get("q"),
		Cuisine:     q.Get("cuisine"),
		MaxDistance: queryInt(r, "maxDistance", 0),
		MaxPrice:    queryInt(r, "maxPrice", 0),
		MinRating:   minRating,
		SortBy:      q.Get("sortBy"),
		Order:       q.Get("order"),
		Limit:       limit,
		Offset:      queryInt(r, "offset", 0),
	}
}

// ListRestaurants handles GET /api/restaurants.
func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	restaurants, err := h.db.ListRestaurants(r.Context(), userID, h.listFilter(r))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to retrieve restaurants", err)
		return
	}
	respondJSON(w, r, http.StatusOK, restaurantListResponse{
		Success: true, Message: "Restaurants retrieved successfully",
		Restaurants: restaurants, Count: len(restaurants),
	})
}

// SearchRestaurants handles GET /api/restaurants/search. Same filter
// surface as the list endpoint, kept as a separate route for the
// client's search screen.
func (h *Handler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	restaurants, err := h.db.ListRestaurants(r.Context(), userID, h.listFilter(r))
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Search failed", err)
		return
	}
	respondJSON(w, r, http.StatusOK, restaurantListResponse{
		Success: true, Message: "Search completed",
		Restaurants: restaurants, Count: len(restaurants),
	})
}

// GetRestaurant handles GET /api/restaurants/{id}. Logged-in views are
// recorded in history; a history failure never fails the read.
func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	restaurant, err := h.db.GetRestaurant(r.Context(), userID, id)
	if err != nil {
		respondStoreError(w, r, err, "Failed to retrieve restaurant")
		return
	}

	if userID != 0 {
		if _, err := h.db.AddHistory(r.Context(), userID, id, models.ActionView); err != nil {
			h.logger.Warn().Err(err).Int64("restaurant_id", id).Msg("failed to record view")
		}
	}

	respondJSON(w, r, http.StatusOK, struct {
		Success    bool               `json:"success"`
		Message    string             `json:"message"`
		Restaurant *models.Restaurant `json:"restaurant"`
	}{true, "Restaurant retrieved successfully", restaurant})
}

// ListCuisines handles GET /api/restaurants/cuisines.
func (h *Handler) ListCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.db.ListCuisines(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to get cuisine types", err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Success  bool                  `json:"success"`
		Message  string                `json:"message"`
		Cuisines []models.CuisineCount `json:"cuisines"`
		Count    int                   `json:"count"`
	}{true, "Cuisine types retrieved", cuisines, len(cuisines)})
}

// PopularRestaurants handles GET /api/restaurants/popular: the catalog
// ordered by review volume.
func (h *Handler) PopularRestaurants(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	restaurants, err := h.db.ListRestaurants(r.Context(), userID, models.RestaurantFilter{
		SortBy: "reviews",
		Limit:  queryInt(r, "limit", 10),
	})
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to get popular restaurants", err)
		return
	}
	respondJSON(w, r, http.StatusOK, restaurantListResponse{
		Success: true, Message: "Popular restaurants retrieved",
		Restaurants: restaurants, Count: len(restaurants),
	})
}

// NearbyRestaurants handles GET /api/restaurants/nearby. With
// latitude/longitude query parameters it computes live GPS distances
// and sorts by them; without GPS it falls back to the static
// distance column.
func (h *Handler) NearbyRestaurants(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	limit := queryInt(r, "limit", 10)
	lat := queryFloat(r, "latitude")
	lon := queryFloat(r, "longitude")

	if lat == nil || lon == nil {
		restaurants, err := h.db.ListRestaurants(r.Context(), userID, models.RestaurantFilter{
			SortBy: "distance", Order: "asc", Limit: limit,
		})
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, "Failed to get nearby restaurants", err)
			return
		}
		respondJSON(w, r, http.StatusOK, restaurantListResponse{
			Success: true, Message: "Nearby restaurants retrieved",
			Restaurants: restaurants, Count: len(restaurants),
		})
		return
	}

	all, err := h.db.ListRestaurants(r.Context(), userID, models.RestaurantFilter{})
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to get nearby restaurants", err)
		return
	}

	nearby := make([]models.Restaurant, 0, len(all))
	for _, restaurant := range all {
		if restaurant.Latitude == nil || restaurant.Longitude == nil {
			continue
		}
		d := recommend.Distance(*lat, *lon, *restaurant.Latitude, *restaurant.Longitude)
		restaurant.Distance = &d
		nearby = append(nearby, restaurant)
	}
	sort.Slice(nearby, func(i, j int) bool { return *nearby[i].Distance < *nearby[j].Distance })
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	respondJSON(w, r, http.StatusOK, restaurantListResponse{
		Success: true, Message: "Nearby restaurants retrieved",
		Restaurants: nearby, Count: len(nearby),
	})
}
