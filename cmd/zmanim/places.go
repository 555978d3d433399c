// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"
)

func (a *app) listPlaces(ctx context.Context, values any, _ []string) error {
	fv := values.(*placesFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	tz, err := time.LoadLocation(fv.TimeZone)
	if err != nil {
		return err
	}
	db, err := a.loadPlaces(ctx, fv.Places, tz)
	if err != nil {
		return err
	}
	for _, name := range db.Names() {
		loc, _ := db.Lookup(name)
		fmt.Fprintf(a.out, "%v\n", loc)
	}
	return nil
}
