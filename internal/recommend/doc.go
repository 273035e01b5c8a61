// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

// Package recommend implements the personalized restaurant ranking
// engine.
//
// The engine blends five signals into an additive score per candidate
// restaurant: proximity to the user's live GPS position, catalog rating,
// cuisine affinity derived from the user's favorites, visit-history
// patterns, and stated preferences (distance and price range). A small
// randomized "discovery" bonus surfaces not-yet-favorited restaurants on
// roughly 30% of requests to keep repeated result lists from going
// stale.
//
// Scoring is a pure single pass over data already materialized in
// memory; the engine performs no I/O of its own. All reads go through
// the DataProvider interface, typically implemented by the database
// package, so the engine stays decoupled from storage and trivially
// testable. Apart from the discovery bonus the score is deterministic
// for identical inputs, and the random source is injectable so tests can
// pin it.
package recommend
