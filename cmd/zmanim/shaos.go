// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/zmanim"
)

func (a *app) shaos(ctx context.Context, values any, args []string) error {
	fv := values.(*shaosFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	start, err := time.Parse(time.RFC3339, fv.Start)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, fv.End)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}
	if end.Before(start) {
		ctxlog.Logger(ctx).Warn("day ends before it starts", "start", start, "end", end)
	}
	hours := make([]float64, len(args))
	for i, arg := range args {
		hours[i], err = strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid number of hours: %q: %w", arg, err)
		}
	}
	fmt.Fprintf(a.out, "temporal hour: %v\n", zmanim.TemporalHour(start, end))
	for i, n := range hours {
		fmt.Fprintf(a.out, "%v: %v\n", args[i], zmanim.ShaosIntoDay(start, end, n).Format(time.RFC3339Nano))
	}
	return nil
}
