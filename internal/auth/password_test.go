// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasherCostBounds(t *testing.T) {
	if _, err := NewPasswordHasher(bcrypt.MinCost - 1); err == nil {
		t.Error("cost below minimum accepted")
	}
	if _, err := NewPasswordHasher(bcrypt.MaxCost + 1); err == nil {
		t.Error("cost above maximum accepted")
	}
	if _, err := NewPasswordHasher(bcrypt.MinCost); err != nil {
		t.Errorf("minimum cost rejected: %v", err)
	}
}

func TestHashAndVerify(t *testing.T) {
	// Minimum cost keeps the test fast; production uses cost 12.
	h, err := NewPasswordHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewPasswordHasher: %v", err)
	}

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("hash is not bcrypt-formatted: %q", hash)
	}

	if !h.Verify(hash, "correct horse battery staple") {
		t.Error("correct password rejected")
	}
	if h.Verify(hash, "wrong password") {
		t.Error("wrong password accepted")
	}
	if h.Verify("not-a-hash", "anything") {
		t.Error("garbage hash accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewPasswordHasher: %v", err)
	}

	a, err := h.Hash("same password")
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Hash("same password")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}
