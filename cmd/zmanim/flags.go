// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/zmanim"
	"cloudeng.io/zmanim/places"
)

type LocationFlags struct {
	Place     string  `subcmd:"place,,name of a location in the places database"`
	Places    string  `subcmd:"places,,'places database, YAML or geonames, defaults to $ZMANIM_PLACES'"`
	Latitude  float64 `subcmd:"lat,0,latitude in degrees north"`
	Longitude float64 `subcmd:"long,0,longitude in degrees east"`
	Elevation float64 `subcmd:"elevation,0,elevation in meters above sea level"`
	TimeZone  string  `subcmd:"tz,UTC,IANA time zone used to display times and for places that do not specify one"`
	Date      string  `subcmd:"date,,'date as YYYY-MM-DD or an RFC3339 instant, defaults to today'"`
}

type timesFlags struct {
	cmdutil.LoggingFlags
	LocationFlags
	ElevationPolicy string `subcmd:"elevation-policy,,'one of never, sunrise-sunset or always, defaults to $ZMANIM_ELEVATION_POLICY'"`
}

type crossingFlags struct {
	cmdutil.LoggingFlags
	LocationFlags
	Zenith          float64 `subcmd:"zenith,90,zenith angle in degrees"`
	Sunset          bool    `subcmd:"sunset,false,compute the evening rather than the morning crossing"`
	AdjustElevation bool    `subcmd:"adjust-elevation,false,adjust the geometric horizon for elevation"`
}

type shaosFlags struct {
	cmdutil.LoggingFlags
	Start string `subcmd:"start,,start of the day as an RFC3339 instant"`
	End   string `subcmd:"end,,end of the day as an RFC3339 instant"`
}

type placesFlags struct {
	cmdutil.LoggingFlags
	Places   string `subcmd:"places,,'places database, YAML or geonames, defaults to $ZMANIM_PLACES'"`
	TimeZone string `subcmd:"tz,UTC,IANA time zone assigned to places that do not specify one"`
}

// withLogger creates the logger specified by lf and stores it in the
// returned context. The returned function must be called to close it.
func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func (a *app) placesFile(file string) string {
	if len(file) > 0 {
		return file
	}
	return a.env.Places
}

func (a *app) loadPlaces(ctx context.Context, file string, tz *time.Location) (*places.DB, error) {
	file = a.placesFile(file)
	if len(file) == 0 {
		return nil, fmt.Errorf("no places database specified, use --places or $ZMANIM_PLACES")
	}
	db := places.NewDB()
	if err := db.LoadFile(file, places.WithTimeZone(tz)); err != nil {
		return nil, err
	}
	ctxlog.Logger(ctx).Debug("loaded places", "file", file, "count", db.Len())
	return db, nil
}

func (a *app) location(ctx context.Context, lf LocationFlags) (zmanim.Location, error) {
	tz, err := time.LoadLocation(lf.TimeZone)
	if err != nil {
		return zmanim.Location{}, err
	}
	if len(lf.Place) > 0 {
		db, err := a.loadPlaces(ctx, lf.Places, tz)
		if err != nil {
			return zmanim.Location{}, err
		}
		loc, ok := db.Lookup(lf.Place)
		if !ok {
			return zmanim.Location{}, fmt.Errorf("unknown place: %q", lf.Place)
		}
		return loc, nil
	}
	loc := zmanim.NewLocation(
		fmt.Sprintf("%.4f,%.4f", lf.Latitude, lf.Longitude),
		lf.Latitude, lf.Longitude, lf.Elevation, tz)
	return loc, loc.Validate()
}

// parseDate parses date as either an RFC3339 instant or a date in
// loc's time zone. An empty date is today.
func parseDate(date string, loc zmanim.Location) (time.Time, error) {
	tz := loc.TimeZone()
	if len(date) == 0 {
		return time.Now().In(tz), nil
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, date, tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD or RFC3339", date)
	}
	return t, nil
}

func (a *app) elevationPolicy(flag string) (zmanim.ElevationPolicy, error) {
	if len(flag) == 0 {
		flag = a.env.ElevationPolicy
	}
	return zmanim.ParseElevationPolicy(flag)
}
