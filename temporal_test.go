// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim_test

import (
	"testing"
	"time"

	"cloudeng.io/zmanim"
)

func TestTemporalHour(t *testing.T) {
	start := time.Date(2025, 7, 29, 6, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 29, 18, 0, 0, 0, time.UTC)
	if got, want := zmanim.TemporalHour(start, end), time.Hour; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := zmanim.ShaosIntoDay(start, end, 4.34), time.Date(2025, 7, 29, 10, 20, 24, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := zmanim.ShaosIntoDay(start, end, -1), start.Add(-time.Hour); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Reversed order is not rejected.
	if got, want := zmanim.TemporalHour(end, start), -time.Hour; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// A 14 hour summer day.
	end = time.Date(2025, 7, 29, 20, 0, 0, 0, time.UTC)
	if got, want := zmanim.TemporalHour(start, end), 70*time.Minute; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := zmanim.ShaosIntoDay(start, end, 3), time.Date(2025, 7, 29, 9, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestShaosIntoDayBounds(t *testing.T) {
	tz := time.FixedZone("IDT", 3*60*60)
	for i, tc := range []struct{ start, end time.Time }{
		{
			time.Date(2025, 7, 29, 5, 53, 59, 757955000, tz),
			time.Date(2025, 7, 29, 19, 38, 20, 321397000, tz),
		},
		{
			time.Date(2025, 12, 21, 7, 17, 3, 1000, tz),
			time.Date(2025, 12, 21, 16, 41, 59, 999999000, tz),
		},
		{
			time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 21, 23, 59, 59, 999999000, time.UTC),
		},
	} {
		if got, want := zmanim.ShaosIntoDay(tc.start, tc.end, 0), tc.start; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := zmanim.ShaosIntoDay(tc.start, tc.end, 12), tc.end; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		prev := tc.start
		for n := 0.5; n <= 12; n += 0.5 {
			next := zmanim.ShaosIntoDay(tc.start, tc.end, n)
			if !next.After(prev) {
				t.Errorf("%v: %v: %v is not after %v", i, n, next, prev)
			}
			prev = next
		}
	}
}

func TestMicrosecondResolution(t *testing.T) {
	start := time.Date(2025, 7, 29, 5, 53, 59, 757955000, time.UTC)
	end := time.Date(2025, 7, 29, 19, 38, 20, 321397000, time.UTC)
	for _, n := range []float64{1, 3, 4, 6.5, 9.5, 10.75, 1.0 / 3} {
		if got := zmanim.ShaosIntoDay(start, end, n); got.Nanosecond()%1000 != 0 {
			t.Errorf("%v: %v is not a whole microsecond", n, got)
		}
	}
	// 4 temporal hours is 16486.854480666... seconds.
	if got, want := zmanim.ShaosIntoDay(start, end, 4), time.Date(2025, 7, 29, 10, 28, 46, 612436000, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	loc := zmanim.NewLocation("Jerusalem", 31.78, 35.03, 526, time.FixedZone("IDT", 3*60*60))
	date := time.Date(2025, 7, 29, 0, 0, 0, 0, loc.TimeLocation)
	for _, offset := range []zmanim.Offset{
		zmanim.Minutes(13.5),
		zmanim.Minutes(1.0 / 7),
		zmanim.ZmaniyosMinutes{Minutes: 72, DayStart: start, DayEnd: end},
	} {
		tm, ok := zmanim.ResolveEvening(date, loc, true, offset)
		if !ok {
			t.Fatalf("%v: does not occur", offset)
		}
		if tm.Nanosecond()%1000 != 0 {
			t.Errorf("%v: %v is not a whole microsecond", offset, tm)
		}
	}
}
