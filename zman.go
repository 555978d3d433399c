// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"time"
)

// Zman represents a named time of day whose value depends on the date
// and location.
type Zman interface {
	Name() string
	Evaluate(date time.Time, loc Location) (time.Time, bool)
}

// ZmanFunc computes a zman using a Calendar, the methods of Calendar
// that return (time.Time, bool) are all ZmanFuncs.
type ZmanFunc func(*Calendar) (time.Time, bool)

type zman struct {
	name   string
	policy ElevationPolicy
	fn     ZmanFunc
}

// NewZman returns a Zman that evaluates fn using a Calendar created with
// the specified elevation policy.
func NewZman(name string, policy ElevationPolicy, fn ZmanFunc) Zman {
	return &zman{name: name, policy: policy, fn: fn}
}

func (z *zman) Name() string {
	return z.name
}

func (z *zman) Evaluate(date time.Time, loc Location) (time.Time, bool) {
	return z.fn(NewCalendar(date, loc, z.policy))
}

// Occurrence is the result of evaluating a Zman. OK is false when the
// zman does not occur on the requested date.
type Occurrence struct {
	Name string
	When time.Time
	OK   bool
}

// ZmanList is a list of zmanim.
type ZmanList []Zman

// Evaluate evaluates every zman in the list for the specified date and
// location, in order.
func (zl ZmanList) Evaluate(date time.Time, loc Location) []Occurrence {
	occ := make([]Occurrence, len(zl))
	for i, z := range zl {
		when, ok := z.Evaluate(date, loc)
		occ[i] = Occurrence{Name: z.Name(), When: when, OK: ok}
	}
	return occ
}

// Lookup returns the zman with the specified name.
func (zl ZmanList) Lookup(name string) (Zman, bool) {
	for _, z := range zl {
		if z.Name() == name {
			return z, true
		}
	}
	return nil, false
}

// Standard returns the named zmanim provided by Calendar in
// chronological order for a typical mid-latitude day.
func Standard(policy ElevationPolicy) ZmanList {
	named := []struct {
		name string
		fn   ZmanFunc
	}{
		{"astronomical-dawn", (*Calendar).AstronomicalDawn},
		{"alos-16.1", (*Calendar).Alos16Point1},
		{"alos-72", (*Calendar).Alos72},
		{"nautical-dawn", (*Calendar).NauticalDawn},
		{"civil-dawn", (*Calendar).CivilDawn},
		{"sunrise", (*Calendar).Sunrise},
		{"sea-level-sunrise", (*Calendar).SeaLevelSunrise},
		{"sof-zman-shma-gra", (*Calendar).SofZmanShmaGRA},
		{"sof-zman-tfila-gra", (*Calendar).SofZmanTfilaGRA},
		{"chatzos", (*Calendar).Chatzos},
		{"mincha-gedola-gra", (*Calendar).MinchaGedolaGRA},
		{"mincha-ketana-gra", (*Calendar).MinchaKetanaGRA},
		{"plag-hamincha-gra", (*Calendar).PlagHaminchaGRA},
		{"sea-level-sunset", (*Calendar).SeaLevelSunset},
		{"sunset", (*Calendar).Sunset},
		{"civil-dusk", (*Calendar).CivilDusk},
		{"tzais-8.5", (*Calendar).Tzais8Point5},
		{"nautical-dusk", (*Calendar).NauticalDusk},
		{"tzais-72", (*Calendar).Tzais72},
		{"astronomical-dusk", (*Calendar).AstronomicalDusk},
		{"chatzos-layla", (*Calendar).ChatzosLayla},
	}
	zl := make(ZmanList, len(named))
	for i, n := range named {
		zl[i] = NewZman(n.name, policy, n.fn)
	}
	return zl
}
