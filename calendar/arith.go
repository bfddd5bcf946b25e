// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "time"

var (
	daysInMonth     [12]int // days in each month
	daysInMonthLeap [12]int
)

func daysInMonthInit(leap bool, month time.Month) int {
	switch month {
	case time.February:
		if leap {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func init() {
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthInit(false, time.Month(i+1))
		daysInMonthLeap[i] = daysInMonthInit(true, time.Month(i+1))
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in the given month for the
// given year. Months outside of 1-12 are normalized into the adjacent
// years.
func DaysInMonth(year int, month time.Month) int {
	year, month = normalizeMonth(year, int(month))
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func normalizeMonth(year, month int) (int, time.Month) {
	return year + floorDiv(month-1, 12), time.Month(floorMod(month-1, 12) + 1)
}

// dayNumber returns the number of days since 1970-01-01 for the
// specified date. Years are counted from March so that the leap day is
// the last day of the counting year. The day may be outside of the
// days in the month, it is simply added to the first of the month.
func dayNumber(year int, month time.Month, day int) int {
	year, month = normalizeMonth(year, int(month))
	if month <= time.February {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400
	mp := (int(month) + 9) % 12
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// fromDayNumber is the inverse of dayNumber.
func fromDayNumber(n int) Date {
	n += 719468
	era := floorDiv(n, 146097)
	doe := n - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	year := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if month > 12 {
		month -= 12
	}
	if month <= 2 {
		year++
	}
	return Date{Year: year, Month: time.Month(month), Day: day}
}

// Normalize returns the valid Date for a year, month and day that may
// be out of range. Months outside of 1-12 roll into the adjacent years,
// so that month 13 is January of the following year and month 0 is
// December of the previous year. Days are then counted from the first
// of the resulting month, so that day 0 is the last day of the previous
// month and day 32 of a 31 day month is the first of the next month.
func Normalize(year int, month time.Month, day int) Date {
	return fromDayNumber(dayNumber(year, month, day))
}

// Normalize returns the normalized form of d, see Normalize.
func (d Date) Normalize() Date {
	return Normalize(d.Year, d.Month, d.Day)
}

// AddDays returns the date n days after d, n may be negative. A day
// outside of the days in d's month is first clamped to the first or last
// day of that month, so that day 31 of a 30 day month plus one day is the
// first of the next month. Use Normalize for rollover of such days.
func AddDays(d Date, n int) Date {
	year, month := normalizeMonth(d.Year, int(d.Month))
	day := min(max(d.Day, 1), DaysInMonth(year, month))
	return fromDayNumber(dayNumber(year, month, day) + n)
}

// DaysBetween returns the number of days from a to b, it is negative
// if b is before a.
func DaysBetween(a, b Date) int {
	return dayNumber(b.Year, b.Month, b.Day) - dayNumber(a.Year, a.Month, a.Day)
}

// AddMonths returns the first day of the month that is n months after
// the month of d. The day of d is ignored, the result is always the first
// of the month as is appropriate for moving the displayed month. Use
// AddMonthsClamped to preserve the day.
func AddMonths(d Date, n int) Date {
	year, month := normalizeMonth(d.Year, int(d.Month)+n)
	return Date{Year: year, Month: month, Day: 1}
}

// AddMonthsClamped returns the date n months after d with the same day
// of the month, clamped to the number of days in the resulting month,
// eg. Jan 31 + 1 month is Feb 28 or 29.
func AddMonthsClamped(d Date, n int) Date {
	year, month := normalizeMonth(d.Year, int(d.Month)+n)
	return Date{Year: year, Month: month, Day: min(d.Day, DaysInMonth(year, month))}
}

// AddYearsClamped returns the date n years after d with the same month
// and day, clamped to the number of days in the resulting month, so
// that Feb 29 becomes Feb 28 in a non-leap year.
func AddYearsClamped(d Date, n int) Date {
	return AddMonthsClamped(d, n*12)
}

// FirstOfMonth returns the first day of d's month.
func FirstOfMonth(d Date) Date {
	year, month := normalizeMonth(d.Year, int(d.Month))
	return Date{Year: year, Month: month, Day: 1}
}

// LastOfMonth returns the last day of d's month.
func LastOfMonth(d Date) Date {
	year, month := normalizeMonth(d.Year, int(d.Month))
	return Date{Year: year, Month: month, Day: DaysInMonth(year, month)}
}

// Weekday returns the day of the week of d, with 0 being Sunday.
func Weekday(d Date) time.Weekday {
	// 1970-01-01 was a Thursday.
	return time.Weekday(floorMod(dayNumber(d.Year, d.Month, d.Day)+int(time.Thursday), 7))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return Weekday(d)
}
