// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package models

import (
	"github.com/goccy/go-json"
)

// PriceRange is an inclusive [Min,Max] price tier pair.
type PriceRange struct {
	Min int
	Max int
}

// Contains reports whether price falls inside the range.
func (p PriceRange) Contains(price int) bool {
	return price >= p.Min && price <= p.Max
}

// MarshalJSON encodes the range in its wire form, a 2-element array.
func (p PriceRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Min, p.Max})
}

// UnmarshalJSON decodes a 2-element array into the range.
func (p *PriceRange) UnmarshalJSON(data []byte) error {
	var arr [2]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	p.Min, p.Max = arr[0], arr[1]
	return nil
}

// ParsePriceRange normalizes the stored price_range column into a typed
// pair. The legacy schema stored it as a JSON string ("[1,3]"); anything
// that does not decode to a 2-element numeric array yields nil. Callers
// downstream never see the raw encoded form.
func ParsePriceRange(raw string) *PriceRange {
	if raw == "" {
		return nil
	}
	var arr []int
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return nil
	}
	if len(arr) != 2 {
		return nil
	}
	return &PriceRange{Min: arr[0], Max: arr[1]}
}

// ParseCuisineTypes normalizes the stored cuisine_types column into a
// string slice, tolerating malformed payloads the same way as
// ParsePriceRange.
func ParseCuisineTypes(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// Preferences holds a user's stated dining preferences. All fields are
// optional; absent fields simply contribute nothing to recommendation
// scoring.
type Preferences struct {
	// MaxDistance is the preferred maximum distance in meters.
	MaxDistance *int `json:"maxDistance,omitempty"`

	// MaxWalkTime is the preferred maximum walk in minutes. Stored and
	// served, but not consumed by the scorer.
	MaxWalkTime *int `json:"maxWalkTime,omitempty"`

	// CuisineTypes is the user's cuisine allow-list.
	CuisineTypes []string `json:"cuisineTypes,omitempty"`

	// PriceRange is the normalized [min,max] price tier pair.
	PriceRange *PriceRange `json:"priceRange,omitempty"`
}

// DefaultPreferences returns the preferences served to users who have
// not saved any.
func DefaultPreferences() *Preferences {
	maxDistance := 1000
	maxWalkTime := 15
	return &Preferences{
		MaxDistance:  &maxDistance,
		MaxWalkTime:  &maxWalkTime,
		CuisineTypes: []string{},
		PriceRange:   &PriceRange{Min: 1, Max: 3},
	}
}
