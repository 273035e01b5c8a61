// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gohango/gohango/internal/models"
)

// DataProvider defines the reads the engine depends on. It is typically
// implemented by the database layer; keeping it an interface here avoids
// a storage dependency and lets tests supply fixtures directly.
type DataProvider interface {
	// GetUserPreferences returns the user's stored preferences, or nil
	// when none are saved. Absence is not an error.
	GetUserPreferences(ctx context.Context, userID int64) (*models.Preferences, error)

	// GetFavoriteCuisineCounts returns the user's most-favorited
	// cuisines, highest count first.
	GetFavoriteCuisineCounts(ctx context.Context, userID int64, limit int) ([]models.CuisineCount, error)

	// GetHistoryAggregate returns per-restaurant visit aggregates,
	// ordered by visit count then recency.
	GetHistoryAggregate(ctx context.Context, userID int64, limit int) ([]models.HistoryStats, error)

	// GetCandidateRestaurants returns restaurants rated at or above
	// minRating, each flagged with whether the user has favorited it.
	GetCandidateRestaurants(ctx context.Context, userID int64, minRating float64) ([]models.Restaurant, error)
}

// Request identifies the user and their optional live GPS position.
type Request struct {
	UserID    int64
	Latitude  *float64
	Longitude *float64
}

// Response is the ranked recommendation list plus the personalization
// signals it was based on.
type Response struct {
	Recommendations []models.ScoredRestaurant
	BasedOn         models.BasedOn
}

// Engine ranks candidate restaurants for a user. It holds no per-request
// state and is safe for concurrent use; the only shared mutable state is
// the discovery random source, guarded by a mutex.
type Engine struct {
	config   *Config
	provider DataProvider
	logger   zerolog.Logger

	rng   *rand.Rand
	rngMu sync.Mutex

	// randOverride replaces the seeded source when set, for tests.
	randOverride func() float64
}

// NewEngine creates a recommendation engine backed by the given
// provider.
func NewEngine(cfg *Config, provider DataProvider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("data provider is required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		config:   cfg,
		provider: provider,
		logger:   logger.With().Str("component", "recommend").Logger(),
		rng:      rand.New(rand.NewSource(seed)), //nolint:gosec // non-cryptographic discovery shuffling
	}, nil
}

// SetRandomSource replaces the discovery random source. Tests use this
// to make the discovery bonus deterministic.
func (e *Engine) SetRandomSource(fn func() float64) {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	e.randOverride = fn
}

// randFloat draws a uniform value in [0,1). Each restaurant's draw is
// independent and never memoized across restaurants or requests.
func (e *Engine) randFloat() float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	if e.randOverride != nil {
		return e.randOverride()
	}
	return e.rng.Float64()
}

// Recommend produces the ranked top-N recommendations for one request.
//
// The provider reads are all-or-nothing: any fetch error fails the whole
// operation with no partial-result degradation. An empty candidate set
// is not an error and yields an empty list with accurate BasedOn flags.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	prefs, err := e.provider.GetUserPreferences(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	favorites, err := e.provider.GetFavoriteCuisineCounts(ctx, req.UserID, e.config.FavoriteCuisineLimit)
	if err != nil {
		return nil, fmt.Errorf("get favorite cuisines: %w", err)
	}

	history, err := e.provider.GetHistoryAggregate(ctx, req.UserID, e.config.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("get history aggregate: %w", err)
	}

	candidates, err := e.provider.GetCandidateRestaurants(ctx, req.UserID, e.config.MinRating)
	if err != nil {
		return nil, fmt.Errorf("get candidates: %w", err)
	}

	in := scoreInput{
		userLat:       req.Latitude,
		userLon:       req.Longitude,
		prefs:         prefs,
		favorites:     favorites,
		history:       history,
		randFloat:     e.randFloat,
		discoveryRate: e.config.DiscoveryRate,
	}

	scored := make([]models.ScoredRestaurant, len(candidates))
	for i, candidate := range candidates {
		scored[i] = models.ScoredRestaurant{Restaurant: candidate}
		scoreRestaurant(&scored[i], in)
	}

	// Rank by score descending. Ties break on higher rating, then lower
	// ID, so the ordering is stable across runs.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].RecommendationScore != scored[j].RecommendationScore {
			return scored[i].RecommendationScore > scored[j].RecommendationScore
		}
		if scored[i].Rating != scored[j].Rating {
			return scored[i].Rating > scored[j].Rating
		}
		return scored[i].ID < scored[j].ID
	})

	if len(scored) > e.config.MaxResults {
		scored = scored[:e.config.MaxResults]
	}

	resp := &Response{
		Recommendations: scored,
		BasedOn: models.BasedOn{
			HasFavorites:   len(favorites) > 0,
			HasHistory:     len(history) > 0,
			HasPreferences: prefs != nil,
		},
	}

	e.logger.Debug().
		Int64("user_id", req.UserID).
		Int("candidates", len(candidates)).
		Int("returned", len(resp.Recommendations)).
		Bool("has_gps", req.Latitude != nil && req.Longitude != nil).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("recommendation complete")

	return resp, nil
}
