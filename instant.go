// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"math"
	"time"

	"cloudeng.io/zmanim/astronomy"
)

// HorizonCrossing returns the UTC time of day, as fractional hours in
// [0, 24), at which the sun crosses zenith at loc on the day containing
// date. The boolean result is false if the crossing does not occur.
// See astronomy.UTCCrossing.
func HorizonCrossing(date time.Time, loc Location, zenith float64, adjustForElevation bool, event astronomy.Event) (float64, bool) {
	return astronomy.UTCCrossing(date, loc.Coordinates, zenith, adjustForElevation, event)
}

// divmod returns the quotient and remainder of x/y.
func divmod(x, y float64) (float64, float64) {
	r := math.Mod(x, y)
	return math.Round((x - r) / y), r
}

// ToInstant returns the instant at hours, a UTC time of day in [0, 24),
// on the calendar date of ref, expressed in tz. The time of day of ref
// is ignored, as is its time zone other than for determining the date.
// The result has microsecond precision. A nil tz is treated as UTC.
func ToInstant(ref time.Time, hours float64, tz *time.Location) time.Time {
	if tz == nil {
		tz = time.UTC
	}
	seconds := hours * (HourMillis / SecondMillis)
	h, rem := divmod(seconds, HourMillis/SecondMillis)
	m, rem := divmod(rem, MinuteMillis/SecondMillis)
	s, micros := divmod(rem*SecondMicros, SecondMicros)
	year, month, day := ref.Date()
	return time.Date(year, month, day, int(h), int(m), int(s), int(micros)*1000, time.UTC).In(tz)
}

// EventInstant is like ToInstant except that the date of the crossing
// is chosen so that the event falls on the local date of ref at loc.
// A crossing computed for a longitude far from the prime meridian may
// occur on the previous or next UTC day; for example, sunset in
// California occurs early in the following UTC day and solar noon in
// Fiji late in the previous one. The local offset is estimated from the
// longitude, 15° per hour.
func EventInstant(ref time.Time, hours float64, loc Location, event astronomy.Event) time.Time {
	tz := loc.TimeZone()
	year, month, day := ref.In(tz).Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	localHours := int(loc.Longitude) / 15
	switch event {
	case astronomy.Sunrise:
		if localHours+int(hours) > 18 {
			date = date.AddDate(0, 0, -1)
		}
	case astronomy.Noon:
		if localHours+int(hours) > 24 {
			date = date.AddDate(0, 0, -1)
		} else if localHours+int(hours) < 0 {
			date = date.AddDate(0, 0, 1)
		}
	case astronomy.Sunset:
		if localHours+int(hours) < 6 {
			date = date.AddDate(0, 0, 1)
		}
	case astronomy.Midnight:
		if localHours+int(hours) < 12 {
			date = date.AddDate(0, 0, 1)
		}
	}
	return ToInstant(date, hours, tz)
}

// ZonedCrossing combines HorizonCrossing and EventInstant.
func ZonedCrossing(date time.Time, loc Location, zenith float64, adjustForElevation bool, event astronomy.Event) (time.Time, bool) {
	hours, ok := HorizonCrossing(date, loc, zenith, adjustForElevation, event)
	if !ok {
		return time.Time{}, false
	}
	return EventInstant(date, hours, loc, event), true
}
