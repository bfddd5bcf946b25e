// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"strconv"

	"cloudeng.io/datepicker/calendar"
)

// IsDisabled returns true if d may not be selected.
func (c *Controller) IsDisabled(d calendar.Date) bool {
	c.mustBeInitialized()
	return c.constraints.IsDisabled(d)
}

// IsSelected returns true if d is the selected date in single mode.
func (c *Controller) IsSelected(d calendar.Date) bool {
	c.mustBeInitialized()
	if c.rangeMode || d.IsZero() {
		return false
	}
	return c.single.Value() == d
}

// IsInSelectedRange returns true if d is strictly between the start and
// end of a complete range, the start and end themselves are reported by
// IsRangeStart and IsRangeEnd.
func (c *Controller) IsInSelectedRange(d calendar.Date) bool {
	c.mustBeInitialized()
	if !c.rangeMode {
		return false
	}
	r := c.rng.Value()
	if !r.Complete() {
		return false
	}
	return r.Start.Before(d) && d.Before(r.End)
}

// IsRangeStart returns true if d is the start of the selected range.
func (c *Controller) IsRangeStart(d calendar.Date) bool {
	c.mustBeInitialized()
	if !c.rangeMode || d.IsZero() {
		return false
	}
	return c.rng.Value().Start == d
}

// IsRangeEnd returns true if d is the end of the selected range.
func (c *Controller) IsRangeEnd(d calendar.Date) bool {
	c.mustBeInitialized()
	if !c.rangeMode || d.IsZero() {
		return false
	}
	return c.rng.Value().End == d
}

// IsInPreviewRange returns true if a range is in progress and d is
// between its start and the hovered date, inclusive.
func (c *Controller) IsInPreviewRange(d calendar.Date) bool {
	c.mustBeInitialized()
	if !c.rangeMode || c.hovered.IsZero() {
		return false
	}
	r := c.rng.Value()
	if !r.Pending() {
		return false
	}
	return calendar.NewRange(r.Start, c.hovered).Normalized().Contains(d)
}

// IsToday returns true if d is the current date.
func (c *Controller) IsToday(d calendar.Date) bool {
	return c.Today() == d
}

// IsOutsideMonth returns true if d is not in the displayed month.
func (c *Controller) IsOutsideMonth(d calendar.Date) bool {
	return !d.SameMonth(calendar.FirstOfMonth(c.CurrentMonth()))
}

// IsFocused returns true if d has keyboard focus.
func (c *Controller) IsFocused(d calendar.Date) bool {
	return c.FocusedDate() == d
}

// Cell represents a single date in a month grid along with its
// classification.
type Cell struct {
	Date         calendar.Date
	Label        string
	Disabled     bool
	Selected     bool
	InRange      bool
	RangeStart   bool
	RangeEnd     bool
	Preview      bool
	Today        bool
	OutsideMonth bool
	Focused      bool
}

// Month represents the 6 week grid for a single month.
type Month struct {
	Anchor calendar.Date // First day of the month.
	Title  string        // Localized month and year.
	Cells  [calendar.GridCells]Cell
}

// Rows returns the cells as 6 rows of 7.
func (m Month) Rows() [calendar.GridRows][calendar.GridColumns]Cell {
	var rows [calendar.GridRows][calendar.GridColumns]Cell
	for i, cell := range m.Cells {
		rows[i/calendar.GridColumns][i%calendar.GridColumns] = cell
	}
	return rows
}

// Snapshot is a read-only view of a Controller's state for use by
// a rendering layer.
type Snapshot struct {
	CurrentMonth calendar.Date
	FocusedDate  calendar.Date
	Value        calendar.Date
	RangeValue   calendar.Range
	RangeMode    bool
	// WeekdayNames are the short weekday names in display order.
	WeekdayNames []string
	Month        Month
}

// Snapshot returns a snapshot of the Controller's current state.
func (c *Controller) Snapshot() Snapshot {
	c.mustBeInitialized()
	return Snapshot{
		CurrentMonth: c.currentMonth,
		FocusedDate:  c.focused,
		Value:        c.Value(),
		RangeValue:   c.RangeValue(),
		RangeMode:    c.rangeMode,
		WeekdayNames: c.formatter.WeekdayNames(),
		Month:        c.month(calendar.FirstOfMonth(c.currentMonth)),
	}
}

// Months returns n consecutive months starting with the displayed month,
// eg. for displaying a range picker as two side by side calendars.
func (c *Controller) Months(n int) []Month {
	c.mustBeInitialized()
	months := make([]Month, 0, max(n, 0))
	anchor := calendar.FirstOfMonth(c.currentMonth)
	for i := range n {
		months = append(months, c.month(calendar.AddMonths(anchor, i)))
	}
	return months
}

func (c *Controller) month(anchor calendar.Date) Month {
	m := Month{
		Anchor: anchor,
		Title:  c.formatter.MonthYear(anchor),
	}
	today := c.today()
	for i, d := range calendar.MonthGrid(anchor, c.formatter.WeekStart()) {
		m.Cells[i] = Cell{
			Date:         d,
			Label:        strconv.Itoa(d.Day),
			Disabled:     c.constraints.IsDisabled(d),
			Selected:     c.IsSelected(d),
			InRange:      c.IsInSelectedRange(d),
			RangeStart:   c.IsRangeStart(d),
			RangeEnd:     c.IsRangeEnd(d),
			Preview:      c.IsInPreviewRange(d),
			Today:        d == today,
			OutsideMonth: !d.SameMonth(anchor),
			Focused:      d == c.focused,
		}
	}
	return m
}
