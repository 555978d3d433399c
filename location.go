// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zmanim

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/zmanim/astronomy"
)

// ErrInvalidLocation is returned, possibly wrapped, by Location.Validate.
var ErrInvalidLocation = errors.New("invalid location")

// Location represents a named position on the earth and the time zone
// used to display times computed for it.
type Location struct {
	Name string
	astronomy.Coordinates
	TimeLocation *time.Location
}

// NewLocation returns a Location. A nil tz is treated as UTC.
func NewLocation(name string, latitude, longitude, elevation float64, tz *time.Location) Location {
	return Location{
		Name: name,
		Coordinates: astronomy.Coordinates{
			Latitude:  latitude,
			Longitude: longitude,
			Elevation: elevation,
		},
		TimeLocation: tz,
	}
}

// Validate returns an error describing every out of range field, all of
// which wrap ErrInvalidLocation.
func (l Location) Validate() error {
	errs := &errors.M{}
	if !(l.Latitude >= -90 && l.Latitude <= 90) {
		errs.Append(fmt.Errorf("%w: %q: latitude %v is not in the range [-90, 90]", ErrInvalidLocation, l.Name, l.Latitude))
	}
	if !(l.Longitude >= -180 && l.Longitude <= 180) {
		errs.Append(fmt.Errorf("%w: %q: longitude %v is not in the range [-180, 180]", ErrInvalidLocation, l.Name, l.Longitude))
	}
	if !(l.Elevation >= 0) {
		errs.Append(fmt.Errorf("%w: %q: elevation %v is negative", ErrInvalidLocation, l.Name, l.Elevation))
	}
	if l.TimeLocation == nil {
		errs.Append(fmt.Errorf("%w: %q: no time zone", ErrInvalidLocation, l.Name))
	}
	return errs.Err()
}

// TimeZone returns the location's time zone, or UTC if none is set.
func (l Location) TimeZone() *time.Location {
	if l.TimeLocation == nil {
		return time.UTC
	}
	return l.TimeLocation
}

func (l Location) String() string {
	return fmt.Sprintf("%v (%.4f, %.4f, %vm, %v)", l.Name, l.Latitude, l.Longitude, l.Elevation, l.TimeZone())
}
