// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"math"
	"time"
)

// TemporalHour returns the length of a temporal hour (sha'ah zmanis),
// one twelfth of the time between start and end. The result is
// negative if end precedes start.
func TemporalHour(start, end time.Time) time.Duration {
	return end.Sub(start) / shaosPerDay
}

// ShaosIntoDay returns the instant n temporal hours after start, where
// the day runs from start to end. n may be fractional or negative. The
// offset from start is rounded to the nearest microsecond, so for
// microsecond aligned start and end ShaosIntoDay(start, end, 0) is start
// and ShaosIntoDay(start, end, 12) is end.
func ShaosIntoDay(start, end time.Time, n float64) time.Time {
	offset := n * float64(end.Sub(start)) / shaosPerDay
	return start.Add(roundMicros(offset))
}

// minutes converts fractional minutes to a duration rounded to the
// nearest microsecond.
func minutes(m float64) time.Duration {
	return roundMicros(m * float64(time.Minute))
}

func roundMicros(nanos float64) time.Duration {
	return time.Duration(math.Round(nanos/float64(time.Microsecond))) * time.Microsecond
}
