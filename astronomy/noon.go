// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import "time"

// solarNoonMinutes returns the time of solar noon in minutes after
// 00:00 UTC for the Julian day jd. The first pass estimates noon from
// the longitude alone, the second evaluates the equation of time at
// that estimate. The longitude is positive west.
func solarNoonMinutes(jd, longitude float64) float64 {
	eot := EquationOfTime(CenturiesFromJulianDay(jd + longitude/360.0))
	noon := (longitude * 4) - eot
	eot = EquationOfTime(CenturiesFromJulianDay(jd + noon/minutesPerDay))
	return minutesPerHalfDay + (longitude * 4) - eot
}

func solarMidnightMinutes(jd, longitude float64) float64 {
	jd += 0.5
	eot := EquationOfTime(CenturiesFromJulianDay(jd + longitude/360.0))
	midnight := (longitude * 4) - eot
	eot = EquationOfTime(CenturiesFromJulianDay(jd + midnight/minutesPerDay))
	return minutesPerDay + (longitude * 4) - eot
}

// SolarNoonUTC returns the time of day in UTC, as fractional hours in
// [0, 24), at which the sun transits the meridian at the specified
// coordinates on the day containing when. Solar noon occurs at every
// latitude.
func SolarNoonUTC(when time.Time, c Coordinates) float64 {
	return normalizeHours(solarNoonMinutes(ToJulianDay(when), -c.Longitude) / minutesPerHour)
}

// SolarMidnightUTC is like SolarNoonUTC but for the anti-transit of the
// sun that follows solar noon.
func SolarMidnightUTC(when time.Time, c Coordinates) float64 {
	return normalizeHours(solarMidnightMinutes(ToJulianDay(when), -c.Longitude) / minutesPerHour)
}
