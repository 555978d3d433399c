// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

// Durations expressed in milliseconds.
const (
	SecondMillis = 1000
	MinuteMillis = 60 * SecondMillis
	HourMillis   = 60 * MinuteMillis
	DayMillis    = 24 * HourMillis
)

// Durations expressed in microseconds.
const (
	SecondMicros = 1000 * SecondMillis
	MinuteMicros = 60 * SecondMicros
	HourMicros   = 60 * MinuteMicros
	DayMicros    = 24 * HourMicros
)

// Number of temporal hours (shaos zmaniyos) in a day.
const shaosPerDay = 12
