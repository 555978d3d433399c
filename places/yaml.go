// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package places

import (
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/zmanim"
	"gopkg.in/yaml.v3"
)

// TimeZone is a time.Location that is unmarshaled from an IANA time
// zone name such as Asia/Jerusalem.
type TimeZone struct {
	*time.Location
}

func (tz *TimeZone) UnmarshalYAML(node *yaml.Node) error {
	loc, err := time.LoadLocation(node.Value)
	if err != nil {
		return fmt.Errorf("line %v: %w", node.Line, err)
	}
	tz.Location = loc
	return nil
}

func (tz TimeZone) MarshalYAML() (any, error) {
	if tz.Location == nil {
		return "UTC", nil
	}
	return tz.Location.String(), nil
}

// Place is the YAML representation of a location, for example:
//
//	name: jerusalem
//	latitude: 31.78
//	longitude: 35.03
//	elevation: 526
//	timezone: Asia/Jerusalem
//
// Elevation and timezone may be omitted, see LoadYAML.
type Place struct {
	Name      string   `yaml:"name"`
	Latitude  float64  `yaml:"latitude"`
	Longitude float64  `yaml:"longitude"`
	Elevation *float64 `yaml:"elevation,omitempty"`
	TimeZone  TimeZone `yaml:"timezone,omitempty"`
}

// Config is the YAML representation of a list of places.
type Config struct {
	Places []Place `yaml:"places"`
}

// Location returns the zmanim.Location represented by p, using the
// elevation and time zone set by opts for those that p omits.
func (p Place) Location(opts ...Option) zmanim.Location {
	o := newOptions(opts)
	if p.Elevation != nil {
		o.elevation = *p.Elevation
	}
	if p.TimeZone.Location != nil {
		o.tz = p.TimeZone.Location
	}
	return zmanim.NewLocation(p.Name, p.Latitude, p.Longitude, o.elevation, o.tz)
}

// LoadYAML loads locations from a YAML document of the form:
//
//	places:
//	  - name: jerusalem
//	    latitude: 31.78
//	    ...
//
// WithElevation and WithTimeZone supply defaults for places that omit
// an elevation or timezone. A place with neither a timezone nor a
// WithTimeZone default is invalid. Every place is validated and all
// invalid places are reported, the valid ones are still added.
func (db *DB) LoadYAML(data []byte, opts ...Option) error {
	var cfg Config
	if err := cmdutil.ParseYAMLConfig(data, &cfg); err != nil {
		return err
	}
	return db.addConfig(cfg, opts)
}

func (db *DB) addConfig(cfg Config, opts []Option) error {
	errs := &errors.M{}
	for _, p := range cfg.Places {
		errs.Append(db.Add(p.Location(opts...)))
	}
	return errs.Err()
}
