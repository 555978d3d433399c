// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package places provides a database of named locations for use with
// zmanim calculations. Locations may be loaded from a YAML document or
// from the postal code data published by www.geonames.org.
package places

import (
	"bufio"
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/zmanim"
)

// DB is a database of named locations.
type DB struct {
	places map[string]zmanim.Location
}

// NewDB returns an empty DB.
func NewDB() *DB {
	return &DB{places: make(map[string]zmanim.Location)}
}

// Option represents an option for loading locations.
type Option func(o *options)

// WithTimeZone sets the time zone assigned to locations that do not
// specify one. Geonames data never includes time zones and defaults
// to UTC.
func WithTimeZone(tz *time.Location) Option {
	return func(o *options) {
		o.tz = tz
	}
}

// WithElevation sets the elevation assigned to locations that do not
// specify one. The default is sea level.
func WithElevation(meters float64) Option {
	return func(o *options) {
		o.elevation = meters
	}
}

type options struct {
	tz        *time.Location
	elevation float64
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Add validates and adds loc to the database, replacing any existing
// location with the same name.
func (db *DB) Add(loc zmanim.Location) error {
	if len(loc.Name) == 0 {
		return fmt.Errorf("%w: missing name", zmanim.ErrInvalidLocation)
	}
	if err := loc.Validate(); err != nil {
		return err
	}
	db.places[loc.Name] = loc
	return nil
}

// Lookup returns the location with the specified name.
func (db *DB) Lookup(name string) (zmanim.Location, bool) {
	loc, ok := db.places[name]
	return loc, ok
}

// Names returns the sorted names of all locations in the database.
func (db *DB) Names() []string {
	return slices.Sorted(maps.Keys(db.places))
}

// Len returns the number of locations in the database.
func (db *DB) Len() int {
	return len(db.places)
}

// LoadGeonames loads postal code data in the tab separated format used
// by www.geonames.org. Each location is named by its admin code and
// postal code, eg. "AK 99553". All invalid lines are reported, the
// valid ones are still added.
func (db *DB) LoadGeonames(data []byte, opts ...Option) error {
	o := newOptions(opts)
	if o.tz == nil {
		o.tz = time.UTC
	}
	errs := &errors.M{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		parts := strings.Split(text, "\t")
		if len(parts) != 12 {
			errs.Append(fmt.Errorf("line %v: wrong number of fields: (%v != 12) %v", line, len(parts), text))
			continue
		}
		latStr, longStr := parts[9], parts[10]
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			errs.Append(fmt.Errorf("line %v: invalid latitude: %v: %w", line, latStr, err))
			continue
		}
		long, err := strconv.ParseFloat(longStr, 64)
		if err != nil {
			errs.Append(fmt.Errorf("line %v: invalid longitude: %v: %w", line, longStr, err))
			continue
		}
		name := parts[4] + " " + parts[1]
		errs.Append(db.Add(zmanim.NewLocation(name, lat, long, o.elevation, o.tz)))
	}
	if err := scanner.Err(); err != nil {
		errs.Append(fmt.Errorf("failed to read data: %w", err))
	}
	return errs.Err()
}

// LoadFile loads the specified file, treating files with a .yaml or .yml
// extension as YAML and all others as geonames data. The options apply
// to both, as described for LoadYAML and LoadGeonames.
func (db *DB) LoadFile(filename string, opts ...Option) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		var cfg Config
		if err := cmdutil.ParseYAMLConfigFile(filename, &cfg); err != nil {
			return err
		}
		return db.addConfig(cfg, opts)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %v: %w", filename, err)
	}
	if err := db.LoadGeonames(data, opts...); err != nil {
		return fmt.Errorf("%v: %w", filename, err)
	}
	return nil
}
