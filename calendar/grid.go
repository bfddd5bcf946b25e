// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"iter"
	"time"
)

const (
	GridRows    = 6
	GridColumns = 7
	GridCells   = GridRows * GridColumns
)

// Grid is the fixed 6 week layout of a month as displayed by a date
// picker. It always starts on the configured first day of the week and
// is padded with the trailing days of the previous month and the leading
// days of the next month.
type Grid [GridCells]Date

// MonthGrid returns the Grid for the month of anchor, the day of anchor
// is ignored. The grid always contains exactly 42 dates, regardless of the
// number of weeks the month spans, and its first date falls on
// weekStartsOn.
func MonthGrid(anchor Date, weekStartsOn time.Weekday) Grid {
	first := FirstOfMonth(anchor)
	lead := floorMod(int(Weekday(first))-int(weekStartsOn), 7)
	var g Grid
	start := AddDays(first, -lead)
	i := 0
	for d := start.Day; i < lead; d++ {
		g[i] = Date{Year: start.Year, Month: start.Month, Day: d}
		i++
	}
	days := DaysInMonth(first.Year, first.Month)
	for d := 1; d <= days; d++ {
		g[i] = Date{Year: first.Year, Month: first.Month, Day: d}
		i++
	}
	next := AddMonths(first, 1)
	for d := 1; i < GridCells; d++ {
		g[i] = Date{Year: next.Year, Month: next.Month, Day: d}
		i++
	}
	return g
}

// First returns the first date in the grid.
func (g Grid) First() Date {
	return g[0]
}

// Last returns the last date in the grid.
func (g Grid) Last() Date {
	return g[GridCells-1]
}

// Index returns the position of d in the grid or -1 if it is not
// displayed.
func (g Grid) Index(d Date) int {
	if d.Before(g.First()) || d.After(g.Last()) {
		return -1
	}
	return DaysBetween(g.First(), d)
}

// Contains returns true if d is displayed in the grid.
func (g Grid) Contains(d Date) bool {
	return g.Index(d) >= 0
}

// Rows returns the grid as 6 rows of 7 dates.
func (g Grid) Rows() [GridRows][GridColumns]Date {
	var rows [GridRows][GridColumns]Date
	for i, d := range g {
		rows[i/GridColumns][i%GridColumns] = d
	}
	return rows
}

// Weeks returns an iterator over the rows of the grid.
func (g Grid) Weeks() iter.Seq2[int, []Date] {
	return func(yield func(int, []Date) bool) {
		for r := 0; r < GridRows; r++ {
			if !yield(r, g[r*GridColumns:(r+1)*GridColumns]) {
				return
			}
		}
	}
}
