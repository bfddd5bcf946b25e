// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"slices"
	"strings"
	"time"
)

// IsDisabled returns true if d is before minDate, after maxDate or is one
// of the disabled dates. A zero minDate or maxDate is ignored.
func IsDisabled(d, minDate, maxDate Date, disabled DateList) bool {
	if !minDate.IsZero() && d.Before(minDate) {
		return true
	}
	if !maxDate.IsZero() && d.After(maxDate) {
		return true
	}
	return disabled.Contains(d)
}

// Rule is a named predicate that disables dates that cannot be expressed
// as a fixed list, such as public holidays.
type Rule interface {
	Name() string
	Disabled(d Date) bool
}

type ruleFunc struct {
	name string
	fn   func(Date) bool
}

func (r ruleFunc) Name() string         { return r.name }
func (r ruleFunc) Disabled(d Date) bool { return r.fn(d) }

// NewRule returns a Rule that calls fn.
func NewRule(name string, fn func(Date) bool) Rule {
	return ruleFunc{name: name, fn: fn}
}

// Constraints represents the set of dates that may not be selected.
// The Min, Max and Disabled dates are evaluated first followed by
// the weekend, weekday and custom rules.
type Constraints struct {
	Min      Date           // If set, dates before Min are disabled.
	Max      Date           // If set, dates after Max are disabled.
	Disabled DateList       // Specific dates to disable.
	Weekends bool           // If true, disable Saturdays and Sundays.
	Weekdays []time.Weekday // Disable these days of the week.
	Rules    []Rule         // Custom rules.
}

// IsDisabled returns true if d may not be selected.
func (c Constraints) IsDisabled(d Date) bool {
	if IsDisabled(d, c.Min, c.Max, c.Disabled) {
		return true
	}
	if c.Weekends || len(c.Weekdays) > 0 {
		wd := Weekday(d)
		if c.Weekends && (wd == time.Saturday || wd == time.Sunday) {
			return true
		}
		if slices.Contains(c.Weekdays, wd) {
			return true
		}
	}
	for _, r := range c.Rules {
		if r.Disabled(d) {
			return true
		}
	}
	return false
}

// Clamp returns d clamped to the Min and Max dates, if set. Min takes
// precedence should both apply.
func (c Constraints) Clamp(d Date) Date {
	if !c.Min.IsZero() && d.Before(c.Min) {
		return c.Min
	}
	if !c.Max.IsZero() && d.After(c.Max) {
		return c.Max
	}
	return d
}

// Empty returns true if no dates are disabled by c.
func (c Constraints) Empty() bool {
	return c.Min.IsZero() && c.Max.IsZero() && len(c.Disabled) == 0 &&
		!c.Weekends && len(c.Weekdays) == 0 && len(c.Rules) == 0
}

func (c Constraints) String() string {
	var out strings.Builder
	sep := func() {
		if out.Len() > 0 {
			out.WriteString(", ")
		}
	}
	if !c.Min.IsZero() {
		out.WriteString("on or after ")
		out.WriteString(c.Min.ISO())
	}
	if !c.Max.IsZero() {
		sep()
		out.WriteString("on or before ")
		out.WriteString(c.Max.ISO())
	}
	if len(c.Disabled) > 0 {
		sep()
		out.WriteString("excluding ")
		out.WriteString(c.Disabled.String())
	}
	if c.Weekends {
		sep()
		out.WriteString("weekdays only")
	}
	for _, wd := range c.Weekdays {
		sep()
		out.WriteString("not on ")
		out.WriteString(wd.String())
	}
	for _, r := range c.Rules {
		sep()
		out.WriteString("not ")
		out.WriteString(r.Name())
	}
	return out.String()
}
