// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package picker provides the selection state for date pickers. A
// Controller holds the month being displayed, the date that has keyboard
// focus and the selected date or date range and implements the
// operations that a rendering layer invokes in response to user input.
// Each picker owns its own Controller, it is not safe for concurrent use.
package picker

import (
	"context"
	"log/slog"
	"time"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/datepicker/picker/keynav"
	"cloudeng.io/logging/ctxlog"
)

// Options represents the configuration of a Controller. At most one
// of Single and Range may be set, the Controller is in range mode if
// Range is set and in single mode otherwise.
type Options struct {
	Single *SingleSelection
	Range  *RangeSelection

	MinDate       calendar.Date     // If set, earlier dates are disabled.
	MaxDate       calendar.Date     // If set, later dates are disabled.
	DisabledDates calendar.DateList // Dates that may not be selected.

	// Constraints are additional constraints, its Min, Max and Disabled
	// fields are overridden by MinDate, MaxDate and DisabledDates when
	// those are set.
	Constraints calendar.Constraints

	Locale locale.Config
	// WeekStartsOn, if set, overrides Locale.WeekStartsOn.
	WeekStartsOn *time.Weekday

	// Today returns the current date, calendar.Today is used if nil.
	Today func() calendar.Date
}

// Controller holds the state of a date picker.
type Controller struct {
	logger      *slog.Logger
	single      *SingleSelection
	rng         *RangeSelection
	rangeMode   bool
	constraints calendar.Constraints
	formatter   *locale.Formatter
	today       func() calendar.Date

	currentMonth calendar.Date
	focused      calendar.Date
	hovered      calendar.Date
}

// New returns a new Controller configured by opts. It panics if both
// opts.Single and opts.Range are set and returns an error if the locale
// configuration is invalid. The logger in ctx, if any, is used to log
// state changes at the debug level.
//
// The displayed month and focused date are initialized from the first
// of the following that is set: the single date value, the start of the
// date range or the current date.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if opts.Single != nil && opts.Range != nil {
		panic("picker.New: only one of Options.Single or Options.Range may be set")
	}
	lc := opts.Locale
	if opts.WeekStartsOn != nil {
		lc.WeekStartsOn = opts.WeekStartsOn
	}
	formatter, err := locale.NewFormatter(lc)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		single:      opts.Single,
		rng:         opts.Range,
		rangeMode:   opts.Range != nil,
		constraints: opts.Constraints,
		formatter:   formatter,
		today:       opts.Today,
	}
	if c.today == nil {
		c.today = calendar.Today
	}
	if !opts.MinDate.IsZero() {
		c.constraints.Min = opts.MinDate
	}
	if !opts.MaxDate.IsZero() {
		c.constraints.Max = opts.MaxDate
	}
	if len(opts.DisabledDates) > 0 {
		c.constraints.Disabled = opts.DisabledDates
	}
	if !c.rangeMode && c.single == nil {
		c.single = Uncontrolled(calendar.Date{}, nil)
	}

	mode := "single"
	var seed calendar.Date
	if c.rangeMode {
		mode = "range"
		seed = c.rng.Value().Start
	} else {
		seed = c.single.Value()
	}
	if seed.IsZero() {
		seed = c.today()
	}
	c.currentMonth, c.focused = seed, seed
	c.logger = ctxlog.Logger(ctx).With("pkg", "cloudeng.io/datepicker/picker", "mode", mode)
	c.logger.Debug("new",
		"month", c.currentMonth,
		"controlled", c.controlled(),
		"constraints", c.constraints.String(),
		"locale", formatter.Locale(),
		"weekStart", formatter.WeekStart())
	return c, nil
}

func (c *Controller) mustBeInitialized() {
	if c == nil || c.today == nil {
		panic("picker: Controller used before being initialized by picker.New")
	}
}

func (c *Controller) controlled() bool {
	if c.rangeMode {
		return c.rng.IsControlled()
	}
	return c.single.IsControlled()
}

// IsRangeMode returns true if the Controller selects date ranges.
func (c *Controller) IsRangeMode() bool {
	c.mustBeInitialized()
	return c.rangeMode
}

// IsControlled returns true if the selected value is owned by the caller.
func (c *Controller) IsControlled() bool {
	c.mustBeInitialized()
	return c.controlled()
}

// Value returns the selected date in single mode, the zero Date
// represents no selection. It returns the zero Date in range mode.
func (c *Controller) Value() calendar.Date {
	c.mustBeInitialized()
	if c.rangeMode {
		return calendar.Date{}
	}
	return c.single.Value()
}

// RangeValue returns the selected range in range mode and an empty
// range in single mode.
func (c *Controller) RangeValue() calendar.Range {
	c.mustBeInitialized()
	if !c.rangeMode {
		return calendar.Range{}
	}
	return c.rng.Value()
}

// SetValue updates a controlled single date value, it panics if the
// Controller is in range mode or the value is uncontrolled.
func (c *Controller) SetValue(d calendar.Date) {
	c.mustBeInitialized()
	if c.rangeMode {
		panic("picker: SetValue called for a range mode picker")
	}
	c.single.Update(d)
	c.logger.Debug("SetValue", "value", d)
}

// SetRangeValue updates a controlled range value, it panics if the
// Controller is in single mode or the value is uncontrolled.
func (c *Controller) SetRangeValue(r calendar.Range) {
	c.mustBeInitialized()
	if !c.rangeMode {
		panic("picker: SetRangeValue called for a single mode picker")
	}
	c.rng.Update(r)
	c.logger.Debug("SetRangeValue", "range", r)
}

// CurrentMonth returns the month being displayed. Its day is carried
// along as given to SetCurrentMonth and is otherwise ignored.
func (c *Controller) CurrentMonth() calendar.Date {
	c.mustBeInitialized()
	return c.currentMonth
}

// FocusedDate returns the date that has keyboard focus.
func (c *Controller) FocusedDate() calendar.Date {
	c.mustBeInitialized()
	return c.focused
}

// HoveredDate returns the date set by SetHoveredDate.
func (c *Controller) HoveredDate() calendar.Date {
	c.mustBeInitialized()
	return c.hovered
}

// Constraints returns the constraints that determine which dates
// are disabled.
func (c *Controller) Constraints() calendar.Constraints {
	c.mustBeInitialized()
	return c.constraints
}

// Formatter returns the locale formatter used by the Controller.
func (c *Controller) Formatter() *locale.Formatter {
	c.mustBeInitialized()
	return c.formatter
}

// WeekStart returns the first day of the week.
func (c *Controller) WeekStart() time.Weekday {
	c.mustBeInitialized()
	return c.formatter.WeekStart()
}

// Today returns the current date.
func (c *Controller) Today() calendar.Date {
	c.mustBeInitialized()
	return c.today()
}

// SelectDate selects d. Disabled dates are ignored, in which case false is
// returned and the change function is not called. In single mode selecting
// the currently selected date clears the selection. In range mode the
// first selection starts a new range and the second completes it, with the
// start and end swapped if needed to keep them in order. Selecting the
// start date again completes a range of one day. Selecting a date when the
// range is already complete starts a new range.
func (c *Controller) SelectDate(d calendar.Date) bool {
	c.mustBeInitialized()
	if c.constraints.IsDisabled(d) {
		c.logger.Debug("SelectDate: disabled", "date", d)
		return false
	}
	if c.rangeMode {
		next := nextRange(c.rng.Value(), d)
		c.rng.propose(next)
		c.logger.Debug("SelectDate", "date", d, "range", next, "controlled", c.rng.IsControlled())
		return true
	}
	var next calendar.Date
	if c.single.Value() != d {
		next = d
	}
	c.single.propose(next)
	c.logger.Debug("SelectDate", "date", d, "value", next, "controlled", c.single.IsControlled())
	return true
}

func nextRange(r calendar.Range, d calendar.Date) calendar.Range {
	if r.Start.IsZero() || !r.End.IsZero() {
		return calendar.Range{Start: d}
	}
	if d.Before(r.Start) {
		return calendar.Range{Start: d, End: r.Start}
	}
	return calendar.Range{Start: r.Start, End: d}
}

// Clear clears the selection, calling the change function with the zero
// Date or an empty range.
func (c *Controller) Clear() {
	c.mustBeInitialized()
	c.hovered = calendar.Date{}
	if c.rangeMode {
		c.rng.propose(calendar.Range{})
	} else {
		c.single.propose(calendar.Date{})
	}
	c.logger.Debug("Clear")
}

// SetCurrentMonth sets the month to be displayed.
func (c *Controller) SetCurrentMonth(d calendar.Date) {
	c.mustBeInitialized()
	c.currentMonth = d
	c.logger.Debug("SetCurrentMonth", "month", d)
}

// GoToPreviousMonth displays the previous month.
func (c *Controller) GoToPreviousMonth() {
	c.SetCurrentMonth(calendar.AddMonths(c.CurrentMonth(), -1))
}

// GoToNextMonth displays the next month.
func (c *Controller) GoToNextMonth() {
	c.SetCurrentMonth(calendar.AddMonths(c.CurrentMonth(), 1))
}

// GoToPreviousYear displays the same month in the previous year.
func (c *Controller) GoToPreviousYear() {
	c.SetCurrentMonth(calendar.AddMonths(c.CurrentMonth(), -12))
}

// GoToNextYear displays the same month in the next year.
func (c *Controller) GoToNextYear() {
	c.SetCurrentMonth(calendar.AddMonths(c.CurrentMonth(), 12))
}

// GoToToday moves focus to the current date, clamped to the minimum and
// maximum dates, and displays its month.
func (c *Controller) GoToToday() {
	c.SetFocusedDate(c.constraints.Clamp(c.Today()))
}

// SetFocusedDate moves focus to d and displays d's month if it is not
// already displayed.
func (c *Controller) SetFocusedDate(d calendar.Date) {
	c.mustBeInitialized()
	c.focused = d
	c.logger.Debug("SetFocusedDate", "date", d)
	if !d.SameMonth(c.currentMonth) {
		c.SetCurrentMonth(calendar.FirstOfMonth(d))
	}
}

// SetHoveredDate records the date under the pointer, it is used to
// preview the range that would be selected. The zero Date clears it.
func (c *Controller) SetHoveredDate(d calendar.Date) {
	c.mustBeInitialized()
	c.hovered = d
}

// HandleKey handles a key press. Enter and Space select the focused date,
// the navigation keys move focus, clamped to the minimum and maximum
// dates, and the displayed month follows focus. It returns false for
// keys that it does not handle.
func (c *Controller) HandleKey(ev keynav.Event) bool {
	c.mustBeInitialized()
	r := keynav.Resolve(ev, c.focused, c.currentMonth,
		keynav.Bounds{Min: c.constraints.Min, Max: c.constraints.Max})
	switch r.Action {
	case keynav.Select:
		c.SelectDate(r.Target)
		return true
	case keynav.Move:
		c.SetFocusedDate(r.Target)
		return true
	}
	c.logger.Debug("HandleKey: ignored", "key", ev.String())
	return false
}
