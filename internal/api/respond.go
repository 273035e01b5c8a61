// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/gohango/gohango/internal/database"
	"github.com/gohango/gohango/internal/logging"
	"github.com/gohango/gohango/internal/models"
	"github.com/gohango/gohango/internal/validation"
)

// maxBodyBytes caps request bodies. The largest legitimate body is a
// review comment.
const maxBodyBytes = 64 << 10

// respondJSON writes any payload as JSON with the right headers.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(payload)
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("failed to write response")
	}
}

// respondError writes the uniform error envelope. err is logged, never
// leaked to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Int("status", status).Msg(message)
	}
	respondJSON(w, r, status, models.APIError{Success: false, Message: message})
}

// respondStoreError maps storage sentinel errors to API statuses,
// falling back to a 500 for anything unexpected.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, r, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, database.ErrDuplicateFavorite):
		respondError(w, r, http.StatusConflict, "Restaurant already favorited", nil)
	case errors.Is(err, database.ErrDuplicateEmail):
		respondError(w, r, http.StatusConflict, "Email already registered", nil)
	default:
		respondError(w, r, http.StatusInternalServerError, fallback, err)
	}
}

// decodeJSON decodes and validates a request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		respondError(w, r, http.StatusBadRequest, verr.Error(), nil)
		return false
	}
	return true
}

// urlParamID parses a positive integer URL parameter.
func urlParamID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// queryFloat parses an optional float query parameter, nil when absent
// or unparseable.
func queryFloat(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
