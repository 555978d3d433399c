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

func TestSolarNoon(t *testing.T) {
	when := time.Date(2025, 7, 29, 10, 30, 26, 0, time.UTC)
	if got, want := astronomy.SolarNoonUTC(when, jerusalem), 9.773053241880701; !floats.EqualWithinAbs(got, want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := astronomy.SolarMidnightUTC(when, jerusalem), 21.77274653378919; !floats.EqualWithinAbs(got, want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Solar noon is midway between sunrise and sunset.
	rise, _ := astronomy.UTCCrossing(when, jerusalem, astronomy.GeometricZenith, false, astronomy.Sunrise)
	set, _ := astronomy.UTCCrossing(when, jerusalem, astronomy.GeometricZenith, false, astronomy.Sunset)
	if got, want := astronomy.SolarNoonUTC(when, jerusalem), (rise+set)/2; !floats.EqualWithinAbs(got, want, 1.0/60) {
		t.Errorf("got %v, want %v", got, want)
	}

	// 2024-01-01 in Cupertino, solar noon is at 12:11:23 PST.
	day := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	if got, want := astronomy.SolarNoonUTC(day, cupertino), 20.19234634083802; !floats.EqualWithinAbs(got, want, 1e-9) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := astronomy.SolarNoonUTC(day, cupertino), 20+11/60.0+23/3600.0; !floats.EqualWithinAbs(got, want, 1.0/60) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Solar noon exists even when the sun never sets.
	june := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)
	if got, want := astronomy.SolarNoonUTC(june, northPole), 12.0; !floats.EqualWithinAbs(got, want, 0.05) {
		t.Errorf("got %v, want %v", got, want)
	}
}
