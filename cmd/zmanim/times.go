// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/zmanim"
)

const timeFormat = "2006-01-02 15:04:05 MST"

func (a *app) times(ctx context.Context, values any, _ []string) error {
	fv := values.(*timesFlags)
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
	policy, err := a.elevationPolicy(fv.ElevationPolicy)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	logger.Debug("times", "location", loc.String(), "date", date, "elevation-policy", policy.String())
	fmt.Fprintf(a.out, "%v on %v\n", loc, date.In(loc.TimeZone()).Format("Mon Jan 2 2006"))
	for _, o := range zmanim.Standard(policy).Evaluate(date, loc) {
		if !o.OK {
			logger.Info("does not occur", "zman", o.Name, "location", loc.Name)
			fmt.Fprintf(a.out, "%-20s n/a\n", o.Name)
			continue
		}
		fmt.Fprintf(a.out, "%-20s %v\n", o.Name, o.When.Format(timeFormat))
	}
	return nil
}
