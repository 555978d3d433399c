// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zmanim computes halachic times of day (zmanim) for a location
// and date. It builds on the horizon crossings computed by the astronomy
// package and provides:
//
//   - mapping of UTC day fractions onto zoned instants, see ToInstant
//     and EventInstant.
//   - temporal (proportional) hours, see TemporalHour and ShaosIntoDay.
//   - dawn and dusk offsets expressed in degrees, clock minutes or
//     temporal minutes, see Offset and ResolveOffset.
//   - a Calendar of commonly used named zmanim.
//
// Events that do not occur on a given date, for example sunrise during
// the polar night, are reported using a boolean result rather than an
// error or a sentinel time. All of the functions are safe for concurrent
// use.
package zmanim
