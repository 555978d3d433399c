// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/zmanim"
	"cloudeng.io/zmanim/astronomy"
)

func (a *app) crossing(ctx context.Context, values any, _ []string) error {
	fv := values.(*crossingFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	loc, err := a.location(ctx, fv.LocationFlags)
	if err != nil {
		return err
	}
	date, err := parseDate(fv.Date, loc)
	if err != nil {
		return err
	}
	event := astronomy.Sunrise
	if fv.Sunset {
		event = astronomy.Sunset
	}
	hours, ok := zmanim.HorizonCrossing(date, loc, fv.Zenith, fv.AdjustElevation, event)
	if !ok {
		ctxlog.Logger(ctx).Info("does not occur", "event", event.String(), "zenith", fv.Zenith, "location", loc.Name)
		fmt.Fprintf(a.out, "%v at %v° does not occur on %v at %v\n", event, fv.Zenith, date.Format("2006-01-02"), loc)
		return nil
	}
	fmt.Fprintf(a.out, "utc-hours: %.12f\n", hours)
	fmt.Fprintf(a.out, "instant:   %v\n", zmanim.EventInstant(date, hours, loc, event).Format("2006-01-02T15:04:05.000000Z07:00"))
	return nil
}
