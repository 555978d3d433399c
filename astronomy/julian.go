// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// J2000 is the Julian day of the J2000.0 epoch, 2000-01-01 12:00 TT.
	J2000 = 2451545.0
	// DaysPerJulianCentury is the number of days in a Julian century.
	DaysPerJulianCentury = 36525.0
)

// ToJulianDay returns the Julian day for the specified instant. The time
// zone of t is ignored, the full instant including the time of day is
// used.
func ToJulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// CenturiesFromJulianDay returns the number of Julian centuries since
// J2000.0 for the specified Julian day.
func CenturiesFromJulianDay(jd float64) float64 {
	return (jd - J2000) / DaysPerJulianCentury
}

// JulianDayFromCenturies is the inverse of CenturiesFromJulianDay.
func JulianDayFromCenturies(t float64) float64 {
	return t*DaysPerJulianCentury + J2000
}
