// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package database

import (
	"errors"
	"io"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when registration reuses an email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateFavorite is returned when a restaurant is favorited
	// twice by the same user.
	ErrDuplicateFavorite = errors.New("restaurant already favorited")
)

// closeQuietly closes a resource and explicitly ignores any error.
// Used in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
