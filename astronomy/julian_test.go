// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"testing"
	"time"

	"cloudeng.io/zmanim/astronomy"
	"gonum.org/v1/gonum/floats"
)

func TestJulianDay(t *testing.T) {
	for i, tc := range []struct {
		when         time.Time
		day, century float64
	}{
		{time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0, 0},
		{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 2458849.5, 0.19998631074606435},
		{time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), 2459580.5, 0.22},
		{time.Date(2025, 7, 29, 10, 30, 26, 0, time.UTC), 2460885.937800926, 0.25574093910817675},
	} {
		jd := astronomy.ToJulianDay(tc.when)
		if got, want := jd, tc.day; !floats.EqualWithinAbs(got, want, 1e-8) {
			t.Errorf("%v: %v: got %v, want %v", i, tc.when, got, want)
		}
		if got, want := astronomy.CenturiesFromJulianDay(jd), tc.century; !floats.EqualWithinAbs(got, want, 1e-12) {
			t.Errorf("%v: %v: got %v, want %v", i, tc.when, got, want)
		}
		if got, want := astronomy.JulianDayFromCenturies(astronomy.CenturiesFromJulianDay(jd)), jd; !floats.EqualWithinAbs(got, want, 1e-8) {
			t.Errorf("%v: %v: got %v, want %v", i, tc.when, got, want)
		}
	}

	// The time zone is ignored, only the instant matters.
	jerusalem := time.FixedZone("IDT", 3*60*60)
	utc := time.Date(2025, 7, 29, 10, 30, 26, 0, time.UTC)
	if got, want := astronomy.ToJulianDay(utc.In(jerusalem)), astronomy.ToJulianDay(utc); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
