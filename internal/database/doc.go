// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

// Package database implements the SQLite storage layer.
//
// All access goes through the DB type, which wraps a database/sql pool
// opened with WAL journaling and foreign key enforcement. Schema is
// created on startup; there is no migration framework, the schema is
// small enough that CREATE TABLE IF NOT EXISTS covers it.
//
// User preferences store cuisine_types and price_range as JSON text
// columns. The readers normalize malformed payloads to nil rather than
// failing, so a bad row never breaks recommendations.
package database
