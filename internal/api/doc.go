// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

// Package api provides the HTTP surface using the chi router.
//
// Every response uses the same envelope: {"success": bool,
// "message": string, ...payload}. Read endpoints under /api/restaurants
// accept optional authentication and personalize the favorite flags
// when a valid token is present; everything touching per-user state
// requires authentication.
package api
