// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

// Package metrics exposes Prometheus instrumentation for the API,
// the SQLite storage layer, and the recommendation engine. All
// collectors are registered on the default registry via promauto and
// served at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gohango_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gohango_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gohango_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Auth metrics

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gohango_auth_attempts_total",
			Help: "Total login and registration attempts",
		},
		[]string{"operation", "outcome"}, // operation: login|register, outcome: success|failure
	)

	// Recommendation metrics

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gohango_recommendation_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gohango_recommendations_served_total",
			Help: "Total recommendation lists served",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, route, status string, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAuthAttempt records a login or registration outcome.
func RecordAuthAttempt(operation string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	AuthAttempts.WithLabelValues(operation, outcome).Inc()
}

// RecordRecommendation records one served recommendation list.
func RecordRecommendation(duration time.Duration) {
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationsServed.Inc()
}
