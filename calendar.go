// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/zmanim/astronomy"
)

// ElevationPolicy determines which zmanim take the observer's elevation
// into account.
type ElevationPolicy int

const (
	// ElevationNever computes every zman at sea level.
	ElevationNever ElevationPolicy = iota
	// ElevationSunriseSunsetOnly uses elevation for sunrise and sunset
	// themselves but not for the zmanim derived from them.
	ElevationSunriseSunsetOnly
	// ElevationAlways uses elevation for sunrise, sunset and every zman
	// that is derived from them.
	ElevationAlways
)

var elevationPolicyNames = map[ElevationPolicy]string{
	ElevationNever:             "never",
	ElevationSunriseSunsetOnly: "sunrise-sunset",
	ElevationAlways:            "always",
}

func (p ElevationPolicy) String() string {
	if n, ok := elevationPolicyNames[p]; ok {
		return n
	}
	return fmt.Sprintf("ElevationPolicy(%d)", int(p))
}

// ParseElevationPolicy parses the value returned by ElevationPolicy.String.
func ParseElevationPolicy(s string) (ElevationPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, n := range elevationPolicyNames {
		if n == s {
			return p, nil
		}
	}
	return ElevationNever, fmt.Errorf("unrecognised elevation policy %q: must be one of never, sunrise-sunset or always", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ElevationPolicy) UnmarshalText(text []byte) error {
	v, err := ParseElevationPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p ElevationPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Calendar computes named zmanim for a single date and location.
type Calendar struct {
	Date      time.Time // Local midnight at the start of the date.
	Location  Location
	Elevation ElevationPolicy
}

// NewCalendar returns a Calendar for the local date of date at loc.
func NewCalendar(date time.Time, loc Location, policy ElevationPolicy) *Calendar {
	tz := loc.TimeZone()
	year, month, day := date.In(tz).Date()
	return &Calendar{
		Date:      time.Date(year, month, day, 0, 0, 0, 0, tz),
		Location:  loc,
		Elevation: policy,
	}
}

func (c *Calendar) useElevation(horizon bool) bool {
	switch c.Elevation {
	case ElevationAlways:
		return true
	case ElevationSunriseSunsetOnly:
		return horizon
	}
	return false
}

func (c *Calendar) crossing(zenith float64, adjust bool, event astronomy.Event) (time.Time, bool) {
	return ZonedCrossing(c.Date, c.Location, zenith, adjust, event)
}

// Sunrise returns sunrise, adjusted for elevation unless the policy is
// ElevationNever.
func (c *Calendar) Sunrise() (time.Time, bool) {
	return c.crossing(astronomy.GeometricZenith, c.useElevation(true), astronomy.Sunrise)
}

// Sunset returns sunset, adjusted for elevation unless the policy is
// ElevationNever.
func (c *Calendar) Sunset() (time.Time, bool) {
	return c.crossing(astronomy.GeometricZenith, c.useElevation(true), astronomy.Sunset)
}

// SeaLevelSunrise returns sunrise ignoring elevation.
func (c *Calendar) SeaLevelSunrise() (time.Time, bool) {
	return c.crossing(astronomy.GeometricZenith, false, astronomy.Sunrise)
}

// SeaLevelSunset returns sunset ignoring elevation.
func (c *Calendar) SeaLevelSunset() (time.Time, bool) {
	return c.crossing(astronomy.GeometricZenith, false, astronomy.Sunset)
}

// daySunrise and daySunset bound the day used by zmanim derived from
// sunrise and sunset.
func (c *Calendar) daySunrise() (time.Time, bool) {
	return c.crossing(astronomy.GeometricZenith, c.useElevation(false), astronomy.Sunrise)
}

func (c *Calendar) daySunset() (time.Time, bool) {
	return c.crossing(astronomy.GeometricZenith, c.useElevation(false), astronomy.Sunset)
}

func (c *Calendar) CivilDawn() (time.Time, bool) {
	return ResolveMorning(c.Date, c.Location, false, Degrees(astronomy.CivilZenith-astronomy.GeometricZenith))
}

func (c *Calendar) CivilDusk() (time.Time, bool) {
	return ResolveEvening(c.Date, c.Location, false, Degrees(astronomy.CivilZenith-astronomy.GeometricZenith))
}

func (c *Calendar) NauticalDawn() (time.Time, bool) {
	return ResolveMorning(c.Date, c.Location, false, Degrees(astronomy.NauticalZenith-astronomy.GeometricZenith))
}

func (c *Calendar) NauticalDusk() (time.Time, bool) {
	return ResolveEvening(c.Date, c.Location, false, Degrees(astronomy.NauticalZenith-astronomy.GeometricZenith))
}

func (c *Calendar) AstronomicalDawn() (time.Time, bool) {
	return ResolveMorning(c.Date, c.Location, false, Degrees(astronomy.AstronomicalZenith-astronomy.GeometricZenith))
}

func (c *Calendar) AstronomicalDusk() (time.Time, bool) {
	return ResolveEvening(c.Date, c.Location, false, Degrees(astronomy.AstronomicalZenith-astronomy.GeometricZenith))
}

// Alos16Point1 returns dawn (alos hashachar) when the sun is 16.1° below
// the horizon.
func (c *Calendar) Alos16Point1() (time.Time, bool) {
	return ResolveMorning(c.Date, c.Location, false, Degrees(16.1))
}

// Alos72 returns dawn as 72 minutes before sunrise.
func (c *Calendar) Alos72() (time.Time, bool) {
	return ResolveMorning(c.Date, c.Location, c.useElevation(false), Minutes(72))
}

// Tzais8Point5 returns nightfall (tzais hakochavim) when the sun is 8.5°
// below the horizon.
func (c *Calendar) Tzais8Point5() (time.Time, bool) {
	return ResolveEvening(c.Date, c.Location, false, Degrees(8.5))
}

// Tzais72 returns nightfall as 72 minutes after sunset.
func (c *Calendar) Tzais72() (time.Time, bool) {
	return ResolveEvening(c.Date, c.Location, c.useElevation(false), Minutes(72))
}

// TemporalHourGRA returns the temporal hour of the day running from
// sunrise to sunset, the reckoning of the Vilna Gaon (GRA).
func (c *Calendar) TemporalHourGRA() (time.Duration, bool) {
	start, end, ok := c.dayGRA()
	if !ok {
		return 0, false
	}
	return TemporalHour(start, end), true
}

func (c *Calendar) dayGRA() (time.Time, time.Time, bool) {
	start, ok := c.daySunrise()
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := c.daySunset()
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// ShaahZmanisGRA returns the instant n temporal hours into the day
// running from sunrise to sunset.
func (c *Calendar) ShaahZmanisGRA(n float64) (time.Time, bool) {
	start, end, ok := c.dayGRA()
	if !ok {
		return time.Time{}, false
	}
	return ShaosIntoDay(start, end, n), true
}

// SofZmanShmaGRA returns the latest time for the morning shema, three
// temporal hours into the day.
func (c *Calendar) SofZmanShmaGRA() (time.Time, bool) {
	return c.ShaahZmanisGRA(3)
}

// SofZmanTfilaGRA returns the latest time for the morning prayer, four
// temporal hours into the day.
func (c *Calendar) SofZmanTfilaGRA() (time.Time, bool) {
	return c.ShaahZmanisGRA(4)
}

// MinchaGedolaGRA returns the earliest time for the afternoon prayer.
func (c *Calendar) MinchaGedolaGRA() (time.Time, bool) {
	return c.ShaahZmanisGRA(6.5)
}

// MinchaKetanaGRA returns the preferred earliest time for the afternoon
// prayer.
func (c *Calendar) MinchaKetanaGRA() (time.Time, bool) {
	return c.ShaahZmanisGRA(9.5)
}

// PlagHaminchaGRA returns plag hamincha, 10.75 temporal hours into the
// day.
func (c *Calendar) PlagHaminchaGRA() (time.Time, bool) {
	return c.ShaahZmanisGRA(10.75)
}

// Chatzos returns midday, the transit of the sun. It occurs at every
// latitude.
func (c *Calendar) Chatzos() (time.Time, bool) {
	hours := astronomy.SolarNoonUTC(c.Date, c.Location.Coordinates)
	return EventInstant(c.Date, hours, c.Location, astronomy.Noon), true
}

// ChatzosLayla returns midnight, the anti-transit of the sun, that
// follows Chatzos.
func (c *Calendar) ChatzosLayla() (time.Time, bool) {
	hours := astronomy.SolarMidnightUTC(c.Date, c.Location.Coordinates)
	return EventInstant(c.Date, hours, c.Location, astronomy.Midnight), true
}
