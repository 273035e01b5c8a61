// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package recommend

import "fmt"

// Config controls the recommendation engine.
type Config struct {
	// MaxResults caps the ranked list returned per request.
	MaxResults int

	// MinRating pre-filters the candidate set. Restaurants below this
	// rating are never considered.
	MinRating float64

	// FavoriteCuisineLimit bounds the favorite-cuisine aggregation
	// fetched from the provider.
	FavoriteCuisineLimit int

	// HistoryLimit bounds the visit-history aggregation fetched from
	// the provider.
	HistoryLimit int

	// DiscoveryRate is the activation probability of the randomized
	// discovery bonus, in [0,1].
	DiscoveryRate float64

	// Seed seeds the discovery random source. 0 selects a time-based
	// seed; tests set a fixed value for reproducibility.
	Seed int64
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxResults:           10,
		MinRating:            4.0,
		FavoriteCuisineLimit: 3,
		HistoryLimit:         10,
		DiscoveryRate:        0.3,
		Seed:                 0,
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.MaxResults < 1 {
		return fmt.Errorf("max results must be positive, got %d", c.MaxResults)
	}
	if c.MinRating < 0 || c.MinRating > 5 {
		return fmt.Errorf("min rating must be in 0-5, got %g", c.MinRating)
	}
	if c.FavoriteCuisineLimit < 1 {
		return fmt.Errorf("favorite cuisine limit must be positive, got %d", c.FavoriteCuisineLimit)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history limit must be positive, got %d", c.HistoryLimit)
	}
	if c.DiscoveryRate < 0 || c.DiscoveryRate > 1 {
		return fmt.Errorf("discovery rate must be in 0-1, got %g", c.DiscoveryRate)
	}
	return nil
}
