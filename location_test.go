// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"cloudeng.io/zmanim"
)

func TestLocationValidate(t *testing.T) {
	if err := jerusalem(t).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := zmanim.NewLocation("edge", -90, 180, 0, time.UTC).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := zmanim.NewLocation("bad", 91, -181, -1, nil).Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, zmanim.ErrInvalidLocation) {
		t.Errorf("unexpected error: %v", err)
	}
	for _, fragment := range []string{"latitude 91", "longitude -181", "elevation -1", "no time zone"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("%q does not contain %q", err, fragment)
		}
	}

	err = zmanim.NewLocation("origin", 0, 0, 0, time.UTC).Validate()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLocationTimeZone(t *testing.T) {
	loc := zmanim.NewLocation("somewhere", 0, 0, 0, nil)
	if got, want := loc.TimeZone(), time.UTC; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := loc.String(), "somewhere (0.0000, 0.0000, 0m, UTC)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := jerusalem(t).String(), "Jerusalem (31.7800, 35.0300, 526m, Asia/Jerusalem)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
