// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"fmt"
	"time"

	"cloudeng.io/zmanim/astronomy"
)

// Offset locates a dawn or dusk relative to sunrise or sunset. It is
// implemented only by Degrees, Minutes and ZmaniyosMinutes.
type Offset interface {
	fmt.Stringer
	isOffset()
}

// Degrees is an offset given as the depression of the sun below the
// geometric horizon. Degree offsets are always computed at sea level.
type Degrees float64

// Minutes is an offset in clock minutes before sunrise or after sunset.
type Minutes float64

// ZmaniyosMinutes is an offset in temporal minutes, that is, minutes
// scaled by the ratio of a temporal hour, computed over the day from
// DayStart to DayEnd, to a clock hour.
type ZmaniyosMinutes struct {
	Minutes          float64
	DayStart, DayEnd time.Time
}

func (Degrees) isOffset()         {}
func (Minutes) isOffset()         {}
func (ZmaniyosMinutes) isOffset() {}

func (d Degrees) String() string {
	return fmt.Sprintf("%v°", float64(d))
}

func (m Minutes) String() string {
	return fmt.Sprintf("%v minutes", float64(m))
}

func (z ZmaniyosMinutes) String() string {
	return fmt.Sprintf("%v zmaniyos minutes", z.Minutes)
}

// Skew returns the ratio of the temporal hour to a clock hour.
func (z ZmaniyosMinutes) Skew() float64 {
	return float64(TemporalHour(z.DayStart, z.DayEnd)) / float64(time.Hour)
}

// Duration returns the clock duration of the offset.
func (z ZmaniyosMinutes) Duration() time.Duration {
	return minutes(z.Minutes * z.Skew())
}

// ResolveOffset returns the instant at loc, on the local date of date,
// located by offset relative to sunrise (event is astronomy.Sunrise) or
// sunset (event is astronomy.Sunset). Morning offsets precede sunrise
// and evening offsets follow sunset. useElevation selects between
// elevation adjusted and sea level sunrise and sunset for Minutes and
// ZmaniyosMinutes; it is ignored for Degrees. The boolean result is
// false if the underlying horizon crossing does not occur.
func ResolveOffset(date time.Time, loc Location, useElevation bool, offset Offset, event astronomy.Event) (time.Time, bool) {
	if event != astronomy.Sunrise && event != astronomy.Sunset {
		return time.Time{}, false
	}
	var delta time.Duration
	switch o := offset.(type) {
	case Degrees:
		return ZonedCrossing(date, loc, astronomy.GeometricZenith+float64(o), false, event)
	case Minutes:
		delta = minutes(float64(o))
	case ZmaniyosMinutes:
		delta = o.Duration()
	default:
		return time.Time{}, false
	}
	base, ok := ZonedCrossing(date, loc, astronomy.GeometricZenith, useElevation, event)
	if !ok {
		return time.Time{}, false
	}
	if event == astronomy.Sunrise {
		return base.Add(-delta), true
	}
	return base.Add(delta), true
}

// ResolveMorning is ResolveOffset relative to sunrise.
func ResolveMorning(date time.Time, loc Location, useElevation bool, offset Offset) (time.Time, bool) {
	return ResolveOffset(date, loc, useElevation, offset, astronomy.Sunrise)
}

// ResolveEvening is ResolveOffset relative to sunset.
func ResolveEvening(date time.Time, loc Location, useElevation bool, offset Offset) (time.Time, bool) {
	return ResolveOffset(date, loc, useElevation, offset, astronomy.Sunset)
}
