// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package api

import (
	"errors"
	"net/http"

	"github.com/gohango/gohango/internal/database"
	"github.com/gohango/gohango/internal/metrics"
	"github.com/gohango/gohango/internal/middleware"
	"github.com/gohango/gohango/internal/models"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	user, err := h.db.CreateUser(r.Context(), req.Name, req.Email, hash)
	if err != nil {
		metrics.RecordAuthAttempt("register", false)
		if errors.Is(err, database.ErrDuplicateEmail) {
			respondError(w, r, http.StatusConflict, "Email already registered", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	metrics.RecordAuthAttempt("register", true)
	h.logger.Info().Int64("user_id", user.ID).Msg("user registered")
	respondJSON(w, r, http.StatusCreated, models.AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    user,
		Token:   token,
	})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.db.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// Same message as a wrong password; do not reveal which.
			metrics.RecordAuthAttempt("login", false)
			respondError(w, r, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, "Login failed", err)
		return
	}

	if !h.hasher.Verify(user.PasswordHash, req.Password) {
		metrics.RecordAuthAttempt("login", false)
		respondError(w, r, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Login failed", err)
		return
	}

	metrics.RecordAuthAttempt("login", true)
	respondJSON(w, r, http.StatusOK, models.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
		Token:   token,
	})
}

// Me handles GET /api/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	user, err := h.db.GetUserByID(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "Failed to load account")
		return
	}

	respondJSON(w, r, http.StatusOK, struct {
		Success bool         `json:"success"`
		User    *models.User `json:"user"`
	}{true, user})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so this
// only confirms; the client discards the token.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Logged out"})
}
