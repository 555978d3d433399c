// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy_test

import (
	"testing"

	"cloudeng.io/zmanim/astronomy"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
	"gonum.org/v1/gonum/floats"
)

func TestEphemeris(t *testing.T) {
	// 2025-07-29T10:30:26Z
	jc := 0.25574093910817675
	for _, tc := range []struct {
		name string
		fn   func(float64) float64
		want float64
	}{
		{"mean longitude", astronomy.SunGeometricMeanLongitude, 127.33716477183407},
		{"mean anomaly", astronomy.SunGeometricMeanAnomaly, 203.96002811457583},
		{"eccentricity", astronomy.EarthOrbitEccentricity, 0.01669787513152839},
		{"equation of center", astronomy.SunEquationOfCenter, -0.7624725515825033},
		{"apparent longitude", astronomy.SunApparentLongitude, 126.56979919035483},
		{"mean obliquity", astronomy.MeanObliquityOfEcliptic, 23.43596541102013},
		{"obliquity", astronomy.ObliquityCorrection, 23.43848957758634},
		{"declination", astronomy.SunDeclination, 18.630096367205354},
		{"equation of time", astronomy.EquationOfTime, -6.499970728030428},
	} {
		if got, want := tc.fn(jc), tc.want; !floats.EqualWithinAbs(got, want, 1e-9) {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}

	if got, want := astronomy.SunTrueLongitude(jc),
		astronomy.SunGeometricMeanLongitude(jc)+astronomy.SunEquationOfCenter(jc); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizedAngles(t *testing.T) {
	// Roughly 1950 to 2150.
	for jc := -0.5; jc <= 1.5; jc += 0.0137 {
		for _, v := range []float64{
			astronomy.SunGeometricMeanLongitude(jc),
			astronomy.SunGeometricMeanAnomaly(jc),
		} {
			if v < 0 || v > 360 {
				t.Errorf("%v: %v is not in [0, 360]", jc, v)
			}
		}
	}
}

func TestDeclinationAtSolstices(t *testing.T) {
	for _, year := range []int{1990, 2024, 2025, 2040} {
		for _, tc := range []struct {
			name string
			jde  float64
			want float64
		}{
			{"march", solstice.March(year), 0},
			{"june", solstice.June(year), 23.44},
			{"september", solstice.September(year), 0},
			{"december", solstice.December(year), -23.44},
		} {
			jc := astronomy.CenturiesFromJulianDay(tc.jde)
			if got, want := astronomy.SunDeclination(jc), tc.want; !floats.EqualWithinAbs(got, want, 0.02) {
				t.Errorf("%v: %v: got %v, want %v", year, tc.name, got, want)
			}
		}
	}
}
