// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
	"log/slog"
)

// Range represents a range of dates, inclusive of the start and end dates.
// Either end may be the zero Date to indicate that it has not been set.
// Start is expected to be on or before End, but this is maintained by
// the code that creates ranges rather than by Range itself.
type Range struct {
	Start Date `yaml:"start" cmd:"first date of the range in YYYY-MM-DD format"`
	End   Date `yaml:"end" cmd:"last date of the range in YYYY-MM-DD format"`
}

// NewRange returns a Range for the start and end dates as given.
func NewRange(start, end Date) Range {
	return Range{Start: start, End: end}
}

// Empty returns true if neither the start nor end date is set.
func (r Range) Empty() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Complete returns true if both the start and end date are set.
func (r Range) Complete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Pending returns true if the start date is set but the end date is not,
// ie. the range is in the process of being selected.
func (r Range) Pending() bool {
	return !r.Start.IsZero() && r.End.IsZero()
}

// Contains returns true if d is within the range, inclusive of both ends.
// It returns false if either end of the range is not set.
func (r Range) Contains(d Date) bool {
	if !r.Complete() {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// IsWithinRange is equivalent to r.Contains(d).
func IsWithinRange(d Date, r Range) bool {
	return r.Contains(d)
}

// Normalized returns a copy of r with the start and end swapped if the
// end is before the start.
func (r Range) Normalized() Range {
	if r.Complete() && r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Days returns the number of days in a complete range, or 0.
func (r Range) Days() int {
	if !r.Complete() {
		return 0
	}
	return DaysBetween(r.Start, r.End) + 1
}

// Dates returns an iterator that yields each date in a complete range.
func (r Range) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if !r.Complete() {
			return
		}
		for d := r.Start; !d.After(r.End); d = AddDays(d, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (r Range) String() string {
	switch {
	case r.Empty():
		return "-"
	case r.Pending():
		return fmt.Sprintf("%s - ", r.Start)
	case r.Start.IsZero():
		return fmt.Sprintf(" - %s", r.End)
	}
	return fmt.Sprintf("%s - %s", r.Start, r.End)
}

// LogValue implements slog.LogValuer.
func (r Range) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("start", r.Start.ISO()),
		slog.String("end", r.End.ISO()))
}
