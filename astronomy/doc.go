// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy implements the NOAA low precision solar position
// series and uses it to find the UTC time of day at which the center of
// the sun crosses a given zenith angle.
//
// All of the series are functions of Julian centuries since J2000.0.
// Angles are stored and returned in degrees, trigonometric functions are
// always applied to radians and the equation of time is returned in
// minutes of clock time.
//
// Times of day are returned as fractional hours in UTC, normalized to
// [0, 24). Events that do not occur, for example sunset during the polar
// night, are reported using the comma-ok idiom rather than a sentinel
// value.
//
// Longitudes are positive east of Greenwich. Internally the solver works
// in the NOAA convention where longitude is positive west.
package astronomy
