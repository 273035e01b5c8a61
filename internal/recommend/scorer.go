// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package recommend

import (
	"fmt"

	"github.com/gohango/gohango/internal/models"
)

// Scoring term weights. The distance tiers are mutually exclusive, as
// are the rating and popularity bonus thresholds.
const (
	distanceVeryCloseBonus = 50 // <= 300m
	distanceWalkingBonus   = 40 // <= 500m
	distanceNearbyBonus    = 30 // <= 1000m
	distanceShortBonus     = 20 // <= 2000m

	preferredDistanceBonus = 15

	ratingMultiplier       = 12
	ratingExceptionalBonus = 20 // rating >= 4.8
	ratingHighBonus        = 10 // rating >= 4.5

	cuisineAffinityBonus = 35

	historyMatchBonus    = 25
	historyVisitWeight   = 3
	historyVisitBonusCap = 15

	priceMatchBonus = 15

	popularityHighBonus = 15 // reviews > 500
	popularityMidBonus  = 10 // reviews > 200
	popularityLowBonus  = 5  // reviews > 100

	discoveryBonus   = 8
	favoritedPenalty = 3
)

// scoreInput bundles the per-request context a single restaurant is
// scored against.
type scoreInput struct {
	userLat   *float64
	userLon   *float64
	prefs     *models.Preferences
	favorites []models.CuisineCount
	history   []models.HistoryStats

	// randFloat draws a uniform value in [0,1) for the discovery bonus.
	randFloat func() float64

	// discoveryRate is the activation probability of the discovery
	// bonus.
	discoveryRate float64
}

// scoreRestaurant computes the additive recommendation score and the
// ordered reason list for one candidate. It mutates only the candidate's
// Distance field (the computed GPS distance overrides the static value
// for display); every upstream record stays untouched.
func scoreRestaurant(r *models.ScoredRestaurant, in scoreInput) {
	var score float64
	reasons := []string{}

	// Distance term: requires both user and restaurant coordinates.
	if in.userLat != nil && in.userLon != nil && r.Latitude != nil && r.Longitude != nil {
		d := Distance(*in.userLat, *in.userLon, *r.Latitude, *r.Longitude)
		r.Distance = &d

		switch {
		case d <= 300:
			score += distanceVeryCloseBonus
			reasons = append(reasons, "Very close to you")
		case d <= 500:
			score += distanceWalkingBonus
			reasons = append(reasons, "Within walking distance")
		case d <= 1000:
			score += distanceNearbyBonus
			reasons = append(reasons, "Nearby location")
		case d <= 2000:
			score += distanceShortBonus
			reasons = append(reasons, "Short distance away")
		default:
			// Smoothly decaying remainder, floored at zero. This is the
			// only fractional term.
			if decay := 10 - float64(d)/500; decay > 0 {
				score += decay
			}
		}

		if in.prefs != nil && in.prefs.MaxDistance != nil && d <= *in.prefs.MaxDistance {
			score += preferredDistanceBonus
			reasons = append(reasons, "Within your preferred range")
		}
	}

	// Rating term: always applied.
	score += r.Rating * ratingMultiplier
	switch {
	case r.Rating >= 4.8:
		score += ratingExceptionalBonus
		reasons = append(reasons, "Exceptional rating")
	case r.Rating >= 4.5:
		score += ratingHighBonus
		reasons = append(reasons, "Highly rated")
	}

	// Cuisine affinity against the user's top favorite cuisines.
	for _, fav := range in.favorites {
		if fav.Cuisine == r.Cuisine {
			score += cuisineAffinityBonus
			reasons = append(reasons, fmt.Sprintf("Your favorite: %s", r.Cuisine))
			break
		}
	}

	// History term: any visited restaurant sharing cuisine or price tier.
	for _, h := range in.history {
		if h.Cuisine == r.Cuisine || h.Price == r.Price {
			visits := h.VisitCount
			if visits < 1 {
				visits = 1
			}
			bonus := visits * historyVisitWeight
			if bonus > historyVisitBonusCap {
				bonus = historyVisitBonusCap
			}
			score += historyMatchBonus + float64(bonus)
			reasons = append(reasons, "Matches your taste")
			break
		}
	}

	// Price preference term. The range was normalized at the database
	// boundary; a nil range means absent or unparseable and contributes
	// nothing.
	if in.prefs != nil && in.prefs.PriceRange != nil && in.prefs.PriceRange.Contains(r.Price) {
		score += priceMatchBonus
		reasons = append(reasons, "Perfect price range")
	}

	// Popularity term.
	switch {
	case r.Reviews > 500:
		score += popularityHighBonus
		reasons = append(reasons, "Very popular")
	case r.Reviews > 200:
		score += popularityMidBonus
		reasons = append(reasons, "Popular choice")
	case r.Reviews > 100:
		score += popularityLowBonus
	}

	// Discovery bonus: nondeterministic tie-breaker surfacing
	// not-yet-favorited restaurants.
	if !r.IsFavorite && in.randFloat != nil && in.randFloat() > 1-in.discoveryRate {
		score += discoveryBonus
		reasons = append(reasons, "New discovery")
	}

	// Already-favorited restaurants rank slightly lower for variety.
	if r.IsFavorite {
		score -= favoritedPenalty
	}

	r.RecommendationScore = score
	r.RecommendationReasons = reasons
}
