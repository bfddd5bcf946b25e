// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides day granularity Gregorian date arithmetic
// for use by date pickers: date values and their ordering, day and month
// arithmetic with explicit rollover rules, weekday computation, the
// fixed 6 week month grid, ISO 8601 encoding and date constraints.
//
// There is no time of day and no timezone, all computation is on local
// civil dates using the proleptic Gregorian calendar.
package calendar

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDate is returned when a date is syntactically valid but
// does not name a day that exists.
var ErrInvalidDate = errors.New("invalid date")

// Date represents a civil date. The zero value represents the absence
// of a date. Dates are not validated on construction, the arithmetic
// functions treat out of range months and days as per Normalize.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for the specified year, month and day without
// any validation or normalization.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime returns the civil date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local civil date.
func Today() Date {
	return FromTime(time.Now())
}

// Time returns midnight on d in the specified location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsZero returns true if d is the zero value, ie. no date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid returns true if d names a day that exists.
func (d Date) Valid() bool {
	return d.Month >= time.January && d.Month <= time.December &&
		d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// Compare returns -1, 0 or +1 depending on whether a is before, the same
// as or after b.
func Compare(a, b Date) int {
	switch {
	case a.Year != b.Year:
		return cmpInt(a.Year, b.Year)
	case a.Month != b.Month:
		return cmpInt(int(a.Month), int(b.Month))
	}
	return cmpInt(a.Day, b.Day)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Before returns true if d is before o.
func (d Date) Before(o Date) bool {
	return Compare(d, o) < 0
}

// After returns true if d is after o.
func (d Date) After(o Date) bool {
	return Compare(d, o) > 0
}

// Equal returns true if d and o name the same year, month and day.
func (d Date) Equal(o Date) bool {
	return d == o
}

// SameMonth returns true if d and o are in the same year and month.
func (d Date) SameMonth(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month
}

// Min returns the earlier of a and b.
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}

// ISO returns d formatted as YYYY-MM-DD.
func (d Date) ISO() string {
	return ToISO(d)
}

func (d Date) String() string {
	return ToISO(d)
}

// LogValue implements slog.LogValuer.
func (d Date) LogValue() slog.Value {
	return slog.StringValue(d.ISO())
}

// ToISO returns d formatted as YYYY-MM-DD with the year padded to at
// least 4 digits and the month and day to 2.
func ToISO(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FromISO parses a date in the form YYYY-MM-DD. It returns false, rather
// than an error, if val does not match that form. The year, month and day
// are returned as written, use ParseISO to also validate them.
func FromISO(val string) (Date, bool) {
	if !isoDateRe.MatchString(val) {
		return Date{}, false
	}
	y, _ := strconv.Atoi(val[0:4])
	m, _ := strconv.Atoi(val[5:7])
	d, _ := strconv.Atoi(val[8:10])
	return Date{Year: y, Month: time.Month(m), Day: d}, true
}

// ParseISO is like FromISO but returns an error for malformed values and
// for dates that do not exist, eg. 2023-02-29.
func ParseISO(val string) (Date, error) {
	d, ok := FromISO(val)
	if !ok {
		return Date{}, fmt.Errorf("%q is not of the form YYYY-MM-DD: %w", val, ErrInvalidDate)
	}
	if !d.Valid() {
		return Date{}, fmt.Errorf("%q: %w", val, ErrInvalidDate)
	}
	return d, nil
}

// MarshalYAML implements yaml.Marshaler. The zero Date is marshaled
// as an empty string.
func (d Date) MarshalYAML() (any, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.ISO(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, an empty value results in
// the zero Date.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if len(value.Value) == 0 {
		*d = Date{}
		return nil
	}
	pd, err := ParseISO(value.Value)
	if err != nil {
		return fmt.Errorf("line %v: %w", value.Line, err)
	}
	*d = pd
	return nil
}
