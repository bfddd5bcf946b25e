// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Config represents a YAML configuration for a Controller.
type Config struct {
	Mode            string          `yaml:"mode,omitempty" cmd:"selection mode, single or range, defaults to range if either range or default_range is set"`
	Value           calendar.Date   `yaml:"value,omitempty" cmd:"controlled selected date in YYYY-MM-DD format"`
	Default         calendar.Date   `yaml:"default,omitempty" cmd:"initial selected date for an uncontrolled picker"`
	Range           *calendar.Range `yaml:"range,omitempty" cmd:"controlled selected range"`
	DefaultRange    *calendar.Range `yaml:"default_range,omitempty" cmd:"initial selected range for an uncontrolled picker"`
	Min             calendar.Date   `yaml:"min,omitempty" cmd:"earliest date that may be selected"`
	Max             calendar.Date   `yaml:"max,omitempty" cmd:"latest date that may be selected"`
	Disabled        []calendar.Date `yaml:"disabled,omitempty" cmd:"dates that may not be selected"`
	DisableWeekends bool            `yaml:"disable_weekends,omitempty" cmd:"if set, Saturdays and Sundays may not be selected"`
	DisableWeekdays []time.Weekday  `yaml:"disable_weekdays,omitempty" cmd:"days of the week, 0 for Sunday through 6 for Saturday, that may not be selected"`
	Locale          locale.Config   `yaml:"locale,omitempty" cmd:"locale used for month and weekday names"`
	Today           calendar.Date   `yaml:"today,omitempty" cmd:"if set, used as the current date, eg. for reproducible output"`
}

const (
	SingleMode = "single"
	RangeMode  = "range"
)

// ParseConfig parses a YAML configuration, fields that are not defined
// by Config are reported as errors. An empty configuration is valid.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(spec))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseConfigFile is like ParseConfig but reads the configuration from
// the named file.
func ParseConfigFile(filename string) (Config, error) {
	spec, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(spec)
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", filename, err)
	}
	return cfg, nil
}

// IsRangeMode returns true if the configuration is for a range picker.
func (c Config) IsRangeMode() bool {
	switch c.Mode {
	case RangeMode:
		return true
	case SingleMode:
		return false
	}
	return c.Range != nil || c.DefaultRange != nil
}

// Validate returns all of the problems found with the configuration.
func (c Config) Validate() error {
	errs := errors.M{}
	switch c.Mode {
	case "", SingleMode, RangeMode:
	default:
		errs.Append(fmt.Errorf("mode: must be %q or %q, not %q", SingleMode, RangeMode, c.Mode))
	}
	if !c.Value.IsZero() && !c.Default.IsZero() {
		errs.Append(fmt.Errorf("only one of value or default may be set"))
	}
	if c.Range != nil && c.DefaultRange != nil {
		errs.Append(fmt.Errorf("only one of range or default_range may be set"))
	}
	if c.IsRangeMode() {
		if !c.Value.IsZero() || !c.Default.IsZero() {
			errs.Append(fmt.Errorf("value and default cannot be used in range mode"))
		}
	} else if c.Range != nil || c.DefaultRange != nil {
		errs.Append(fmt.Errorf("range and default_range cannot be used in single mode"))
	}
	if !c.Min.IsZero() && !c.Max.IsZero() && c.Max.Before(c.Min) {
		errs.Append(fmt.Errorf("max %v is before min %v", c.Max, c.Min))
	}
	for _, wd := range c.DisableWeekdays {
		if wd < time.Sunday || wd > time.Saturday {
			errs.Append(fmt.Errorf("disable_weekdays: invalid day of the week: %d", wd))
		}
	}
	if err := c.Locale.Validate(); err != nil {
		errs.Append(fmt.Errorf("locale: %w", err))
	}
	return errs.Err()
}

// Constraints returns the calendar constraints specified by the
// configuration.
func (c Config) Constraints() calendar.Constraints {
	return calendar.Constraints{
		Min:      c.Min,
		Max:      c.Max,
		Disabled: calendar.DateList(c.Disabled),
		Weekends: c.DisableWeekends,
		Weekdays: c.DisableWeekdays,
	}
}

// Options returns the Options for the configuration. A value or range,
// as opposed to a default, results in a controlled Selection and it is
// the caller's responsibility to accept changes using SetValue or
// SetRangeValue. Either change function may be nil.
func (c Config) Options(onChange func(calendar.Date), onRangeChange func(calendar.Range)) Options {
	opts := Options{
		Constraints: c.Constraints(),
		Locale:      c.Locale,
	}
	if !c.Today.IsZero() {
		today := c.Today
		opts.Today = func() calendar.Date { return today }
	}
	if c.IsRangeMode() {
		switch {
		case c.Range != nil:
			opts.Range = Controlled(*c.Range, onRangeChange)
		case c.DefaultRange != nil:
			opts.Range = Uncontrolled(*c.DefaultRange, onRangeChange)
		default:
			opts.Range = Uncontrolled(calendar.Range{}, onRangeChange)
		}
		return opts
	}
	if !c.Value.IsZero() {
		opts.Single = Controlled(c.Value, onChange)
	} else {
		opts.Single = Uncontrolled(c.Default, onChange)
	}
	return opts
}
