// GohanGo - Restaurant Discovery and Personalized Recommendations
// Copyright 2026 GohanGo contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gohango/gohango

package recommend

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in meters between two
// points given in decimal degrees, rounded to the nearest integer.
//
// Inputs are assumed to be valid coordinates (lat in [-90,90], lon in
// [-180,180]); presence checks happen upstream. The function is pure and
// deterministic.
func Distance(lat1, lon1, lat2, lon2 float64) int {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(earthRadiusKm * c * 1000))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
