// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command zmanim computes halachic times of day for a location and date.
package main

import (
	"context"
	"io"
	"os"
	_ "time/tzdata"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"github.com/caarlos0/env/v11"
)

const cmdSpec = `name: zmanim
summary: compute halachic times of day (zmanim) for a location and date
commands:
  - name: times
    summary: print the standard zmanim for a date and location
  - name: crossing
    summary: print the time at which the sun crosses the specified zenith angle
  - name: shaos
    summary: print the instants that are the specified number of temporal hours into the day
    arguments:
      - <hours>
      - ...
  - name: places
    summary: list the locations in a places database
`

// environment contains defaults that may be set via environment variables.
type environment struct {
	Places          string `env:"ZMANIM_PLACES"`
	ElevationPolicy string `env:"ZMANIM_ELEVATION_POLICY" envDefault:"sunrise-sunset"`
}

type app struct {
	out io.Writer
	env environment
}

func newApp(out io.Writer) (*app, error) {
	a := &app{out: out}
	if err := env.Parse(&a.env); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) commands() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("times").MustRunnerAndFlags(
		a.times, subcmd.MustRegisteredFlagSet(&timesFlags{}))
	cmdSet.Set("crossing").MustRunnerAndFlags(
		a.crossing, subcmd.MustRegisteredFlagSet(&crossingFlags{}))
	cmdSet.Set("shaos").MustRunnerAndFlags(
		a.shaos, subcmd.MustRegisteredFlagSet(&shaosFlags{}))
	cmdSet.Set("places").MustRunnerAndFlags(
		a.listPlaces, subcmd.MustRegisteredFlagSet(&placesFlags{}))
	return cmdSet
}

func main() {
	a, err := newApp(os.Stdout)
	if err != nil {
		cmdutil.Exit("failed to parse environment: %v", err)
	}
	subcmd.Dispatch(context.Background(), a.commands())
}
