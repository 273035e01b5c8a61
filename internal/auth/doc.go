// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

// Package auth implements session authentication: bcrypt password
// hashing and stateless JWT session tokens signed with HMAC-SHA256.
//
// Tokens carry the user ID and email and are valid for the configured
// session timeout. They cannot be revoked before expiration; clients
// discard the token to log out.
package auth
