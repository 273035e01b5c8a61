// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package validation

import (
	"strings"
	"testing"
)

type registerFixture struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type gpsFixture struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		input       interface{}
		wantErr     bool
		wantMessage string
	}{
		{
			name:  "valid register",
			input: registerFixture{Name: "Alice", Email: "alice@example.com", Password: "secret1"},
		},
		{
			name:        "missing email",
			input:       registerFixture{Name: "Alice", Password: "secret1"},
			wantErr:     true,
			wantMessage: "Email is required",
		},
		{
			name:        "bad email",
			input:       registerFixture{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			wantErr:     true,
			wantMessage: "Email must be a valid email address",
		},
		{
			name:        "short password",
			input:       registerFixture{Name: "Alice", Email: "alice@example.com", Password: "abc"},
			wantErr:     true,
			wantMessage: "Password must be at least 6 characters",
		},
		{
			name:  "valid coordinates",
			input: gpsFixture{Latitude: 21.03, Longitude: 105.85},
		},
		{
			name:        "latitude out of range",
			input:       gpsFixture{Latitude: 91, Longitude: 0},
			wantErr:     true,
			wantMessage: "Latitude must be a valid latitude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("message = %q, want substring %q", err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	err := ValidateStruct(registerFixture{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Fields()) != 3 {
		t.Errorf("got %d field errors, want 3: %v", len(err.Fields()), err)
	}
	// All messages surface in the combined error.
	for _, want := range []string{"Name is required", "Email is required", "Password is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("combined message missing %q: %q", want, err.Error())
		}
	}
}
