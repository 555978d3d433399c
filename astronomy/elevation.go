// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import "math"

const (
	// EarthRadius is the mean radius of the earth in kilometers as used
	// for the horizon dip calculation.
	EarthRadius = 6356.9
	// Refraction is the average atmospheric refraction at the horizon in
	// degrees (34 arcminutes).
	Refraction = 34 / 60.0
	// SolarRadius is the apparent radius of the sun in degrees
	// (16 arcminutes).
	SolarRadius = 16 / 60.0
)

// Dip returns the depression of the visible horizon, in degrees, seen by
// an observer at the specified elevation in meters.
func Dip(elevation float64) float64 {
	return deg(math.Acos(EarthRadius / (EarthRadius + (elevation / 1000))))
}

// AdjustedZenith returns the zenith to use for a horizon crossing as seen
// from the specified elevation. Only the geometric horizon, exactly 90°,
// is adjusted, in which case refraction, the solar radius and the
// elevation dip are added; any other zenith is returned unchanged since
// twilight angles are defined relative to the geometric horizon.
func AdjustedZenith(zenith, elevation float64) float64 {
	if zenith != GeometricZenith {
		return zenith
	}
	return zenith + Refraction + SolarRadius + Dip(elevation)
}
