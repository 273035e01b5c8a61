// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"net/http"
	"time"

	"github.com/gohango/gohango/internal/metrics"
	"github.com/gohango/gohango/internal/middleware"
	"github.com/gohango/gohango/internal/models"
	"github.com/gohango/gohango/internal/recommend"
)

// Recommendations handles GET /api/recommendations. Optional
// latitude/longitude query parameters enable the distance scoring
// terms.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	lat := queryFloat(r, "latitude")
	lon := queryFloat(r, "longitude")
	if (lat == nil) != (lon == nil) {
		respondError(w, r, http.StatusBadRequest, "latitude and longitude must be provided together", nil)
		return
	}
	if lat != nil && (*lat < -90 || *lat > 90 || *lon < -180 || *lon > 180) {
		respondError(w, r, http.StatusBadRequest, "latitude/longitude out of range", nil)
		return
	}

	start := time.Now()
	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		UserID:    userID,
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to get recommendations", err)
		return
	}
	metrics.RecordRecommendation(time.Since(start))

	respondJSON(w, r, http.StatusOK, models.RecommendationsResponse{
		Success:         true,
		Recommendations: resp.Recommendations,
		BasedOn:         resp.BasedOn,
	})
}
