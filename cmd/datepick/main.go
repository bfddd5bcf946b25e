// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datepick displays date picker grids in a terminal and replays
// key presses and selections against a picker configuration. It is
// intended for developing and debugging picker configurations.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/picker"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

type CommonFlags struct {
	cmdutil.LoggingFlags
	ConfigFile string `subcmd:"config,,YAML configuration file as described by the config command"`
	Locale     string `subcmd:"locale,,'locale tag, eg. de-DE, overrides the configuration file'"`
	WeekStart  int    `subcmd:"week-start,-1,'first day of the week, 0 for Sunday through 6 for Saturday, overrides the configuration file'"`
	Today      string `subcmd:"today,,'current date in YYYY-MM-DD format, overrides the configuration file'"`
	Plain      bool   `subcmd:"plain,false,display grids without colors or styles"`
}

type gridFlags struct {
	CommonFlags
	Months int `subcmd:"months,1,number of consecutive months to display"`
}

type keysFlags struct {
	CommonFlags
}

type selectFlags struct {
	CommonFlags
	Hover string `subcmd:"hover,,date in YYYY-MM-DD format to hover over after the selections are made"`
}

type configFlags struct {
	Example bool `subcmd:"example,false,print an example configuration file"`
}

func init() {
	gridCmd := subcmd.NewCommand("grid",
		subcmd.MustRegisterFlagStruct(&gridFlags{}, nil, nil),
		grid, subcmd.OptionalSingleArgument())
	gridCmd.Document("display the calendar grid for a month, the month of the focused date is used by default", "[YYYY-MM]")

	keysCmd := subcmd.NewCommand("keys",
		subcmd.MustRegisterFlagStruct(&keysFlags{}, nil, nil),
		keys)
	keysCmd.Document("replay key presses, eg. ArrowLeft, pgup or shift+PageUp, and display the resulting focus and selection", "<key>...")

	selectCmd := subcmd.NewCommand("select",
		subcmd.MustRegisterFlagStruct(&selectFlags{}, nil, nil),
		selectDates)
	selectCmd.Document("select the specified dates in order and display the resulting selection", "<YYYY-MM-DD>...")

	configCmd := subcmd.NewCommand("config",
		subcmd.MustRegisterFlagStruct(&configFlags{}, nil, nil),
		describeConfig, subcmd.WithoutArguments())
	configCmd.Document("describe the YAML configuration file")

	cmdSet = subcmd.NewCommandSet(gridCmd, keysCmd, selectCmd, configCmd)
	cmdSet.Document(`display and exercise date picker configurations.

The configuration file specifies the selection mode, initial values,
constraints and locale. A value or range in the configuration is treated
as a controlled value that is updated whenever a change is proposed.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

// config returns the configuration specified by the config file, if any,
// with the command line overrides applied.
func (cf CommonFlags) config() (picker.Config, error) {
	var cfg picker.Config
	if len(cf.ConfigFile) > 0 {
		var err error
		if cfg, err = picker.ParseConfigFile(os.ExpandEnv(cf.ConfigFile)); err != nil {
			return picker.Config{}, err
		}
	}
	if len(cf.Locale) > 0 {
		cfg.Locale.Locale = cf.Locale
	}
	if cf.WeekStart >= 0 {
		wd := time.Weekday(cf.WeekStart)
		cfg.Locale.WeekStartsOn = &wd
	}
	if len(cf.Today) > 0 {
		today, err := calendar.ParseISO(cf.Today)
		if err != nil {
			return picker.Config{}, fmt.Errorf("--today: %w", err)
		}
		cfg.Today = today
	}
	return cfg, cfg.Validate()
}

// context returns a context containing the logger specified by the
// logging flags.
func (cf CommonFlags) context(ctx context.Context) (context.Context, io.Closer, error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), logger, nil
}

// setup creates a session for the configuration and logging
// specified by the flags.
func (cf CommonFlags) setup(ctx context.Context, out io.Writer) (*session, io.Closer, error) {
	cfg, err := cf.config()
	if err != nil {
		return nil, nil, err
	}
	ctx, closer, err := cf.context(ctx)
	if err != nil {
		return nil, nil, err
	}
	s, err := newSession(ctx, cfg, out, newRenderer(cf.Plain))
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return s, closer, nil
}

func grid(ctx context.Context, values interface{}, args []string) error {
	return runGrid(ctx, values.(*gridFlags), args, os.Stdout)
}

func keys(ctx context.Context, values interface{}, args []string) error {
	return runKeys(ctx, values.(*keysFlags), args, os.Stdout)
}

func selectDates(ctx context.Context, values interface{}, args []string) error {
	return runSelect(ctx, values.(*selectFlags), args, os.Stdout)
}

func describeConfig(_ context.Context, values interface{}, _ []string) error {
	return runConfig(values.(*configFlags), os.Stdout)
}
