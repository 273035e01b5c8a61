// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"net/http"
	"time"
)

// Health handles GET /api/health: liveness plus a database ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("health check database ping failed")
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, r, code, struct {
		Success   bool      `json:"success"`
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}{code == http.StatusOK, status, time.Now().UTC()})
}
