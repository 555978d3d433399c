// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"math"
	"time"
)

// Zenith angles, in degrees, measured from directly overhead.
const (
	GeometricZenith    = 90.0
	CivilZenith        = GeometricZenith + 6
	NauticalZenith     = GeometricZenith + 12
	AstronomicalZenith = GeometricZenith + 18
)

const (
	minutesPerHour    = 60.0
	minutesPerHalfDay = 720.0
	minutesPerDay     = 1440.0
	hoursPerDay       = 24.0
)

// Event identifies a daily solar event.
type Event int

const (
	// Sunrise is the morning crossing of a zenith angle.
	Sunrise Event = iota
	// Sunset is the evening crossing of a zenith angle.
	Sunset
	// Noon is the transit of the sun across the local meridian.
	Noon
	// Midnight is the anti-transit, twelve solar hours after Noon.
	Midnight
)

func (e Event) String() string {
	switch e {
	case Sunrise:
		return "sunrise"
	case Sunset:
		return "sunset"
	case Noon:
		return "noon"
	case Midnight:
		return "midnight"
	}
	return "unknown"
}

// Coordinates represents the position of an observer. Latitude and
// longitude are in degrees with north and east positive, elevation is in
// meters above sea level.
type Coordinates struct {
	Latitude, Longitude, Elevation float64
}

// UTCCrossing returns the time of day in UTC, as fractional hours in
// [0, 24), at which the center of the sun crosses the specified zenith
// on the day containing when. The event must be either Sunrise or
// Sunset. If adjustForElevation is true the observer's elevation is
// used to lower the horizon, see AdjustedZenith; refraction and the
// solar radius are applied to the geometric zenith regardless.
//
// The boolean result is false when the sun does not reach the zenith
// on that day, for example near the poles.
func UTCCrossing(when time.Time, c Coordinates, zenith float64, adjustForElevation bool, event Event) (float64, bool) {
	if event != Sunrise && event != Sunset {
		return 0, false
	}
	elevation := 0.0
	if adjustForElevation {
		elevation = c.Elevation
	}
	zenith = AdjustedZenith(zenith, elevation)
	minutes, ok := crossingMinutes(ToJulianDay(when), c.Latitude, -c.Longitude, zenith, event)
	if !ok {
		return 0, false
	}
	return normalizeHours(minutes / minutesPerHour), true
}

// crossingMinutes returns the crossing time in minutes after 00:00 UTC
// using a fixed two pass refinement: the first pass evaluates the sun's
// position at solar noon, the second at the time found by the first.
// The longitude is positive west.
func crossingMinutes(jd, latitude, longitude, zenith float64, event Event) (float64, bool) {
	noon := solarNoonMinutes(jd, longitude)
	first, ok := crossingPass(CenturiesFromJulianDay(jd+noon/minutesPerDay), latitude, longitude, zenith, event)
	if !ok {
		return 0, false
	}
	return crossingPass(CenturiesFromJulianDay(jd+first/minutesPerDay), latitude, longitude, zenith, event)
}

func crossingPass(t, latitude, longitude, zenith float64, event Event) (float64, bool) {
	eot := EquationOfTime(t)
	declination := SunDeclination(t)
	ha, ok := HourAngle(latitude, declination, zenith, event)
	if !ok {
		return 0, false
	}
	delta := longitude - ha
	return minutesPerHalfDay + 4*delta - eot, true
}

// HourAngle returns the hour angle, in degrees, of the sun at the
// specified zenith for an observer at latitude when the sun has the
// given declination. The hour angle is negative for Sunset. The boolean
// result is false if the sun never reaches the zenith, that is, it stays
// either above or below it for the entire day.
func HourAngle(latitude, declination, zenith float64, event Event) (float64, bool) {
	latRad := rad(latitude)
	decRad := rad(declination)
	arg := math.Cos(rad(zenith))/(math.Cos(latRad)*math.Cos(decRad)) - math.Tan(latRad)*math.Tan(decRad)
	// The negated test also rejects NaN, which occurs at the poles.
	if !(arg >= -1 && arg <= 1) {
		return 0, false
	}
	ha := math.Acos(arg)
	if event == Sunset {
		ha = -ha
	}
	return deg(ha), true
}

// normalizeHours maps h into [0, 24).
func normalizeHours(h float64) float64 {
	h = math.Mod(h, hoursPerDay)
	if h < 0 {
		h += hoursPerDay
	}
	return h
}
