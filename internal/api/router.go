// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gohango/gohango/internal/middleware"
)

// Router builds the full route tree.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order to every route.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.PrometheusMetrics)

	requireAuth := middleware.Authenticate(h.jwt)
	optionalAuth := middleware.OptionalAuth(h.jwt)

	r.Get("/api/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Credential endpoints carry strict per-IP rate limiting against
	// brute force.
	r.Route("/api/auth", func(r chi.Router) {
		limited := httprate.LimitByIP(h.cfg.Security.RateLimitReqs, h.cfg.Security.RateLimitWindow)
		r.With(limited).Post("/register", h.Register)
		r.With(limited).Post("/login", h.Login)
		r.With(requireAuth).Get("/me", h.Me)
		r.With(requireAuth).Post("/logout", h.Logout)
	})

	// Catalog reads are public; a valid token personalizes the
	// favorite flags and records views.
	r.Route("/api/restaurants", func(r chi.Router) {
		r.Use(optionalAuth)
		r.Get("/cuisines", h.ListCuisines)
		r.Get("/popular", h.PopularRestaurants)
		r.Get("/nearby", h.NearbyRestaurants)
		r.Get("/search", h.SearchRestaurants)
		r.Get("/{id}", h.GetRestaurant)
		r.Get("/", h.ListRestaurants)
	})

	r.Route("/api/favorites", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.ListFavorites)
		r.Get("/{id}/check", h.CheckFavorite)
		r.Put("/{id}/toggle", h.ToggleFavorite)
		r.Post("/{id}", h.AddFavorite)
		r.Delete("/{id}", h.RemoveFavorite)
	})

	r.Route("/api/history", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/recently-viewed", h.RecentlyViewed)
		r.Get("/by-action/{action}", h.ListHistoryByAction)
		r.Get("/", h.ListHistory)
		r.Post("/", h.AddHistory)
		r.Delete("/old/{days}", h.DeleteOldHistory)
		r.Delete("/{id}", h.DeleteHistoryEntry)
		r.Delete("/", h.ClearHistory)
	})

	r.Route("/api/profile", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/stats", h.GetProfileStats)
		r.Get("/preferences", h.GetPreferences)
		r.Put("/preferences", h.SavePreferences)
		r.Delete("/preferences", h.DeletePreferences)
		r.Get("/", h.GetProfile)
		r.Put("/", h.UpdateProfile)
	})

	r.Route("/api/reviews", func(r chi.Router) {
		r.Get("/restaurant/{restaurantId}", h.RestaurantReviews)
		r.With(requireAuth).Post("/", h.UpsertReview)
		r.With(requireAuth).Get("/my-review/{restaurantId}", h.MyReviewForRestaurant)
		r.With(requireAuth).Get("/my-reviews", h.MyReviews)
		r.With(requireAuth).Delete("/{restaurantId}", h.DeleteReview)
	})

	r.Route("/api/recommendations", func(r chi.Router) {
		r.Use(requireAuth)
		// The client's recommendation screen reads and writes the same
		// preferences the profile screen does.
		r.Get("/preferences", h.GetPreferences)
		r.Post("/preferences", h.SavePreferences)
		r.Get("/", h.Recommendations)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, "Route not found", nil)
	})

	return r
}
