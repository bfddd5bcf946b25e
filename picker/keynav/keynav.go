// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package keynav maps keyboard input to movements of the focused date
// in a calendar grid. Keys may be named using either the names used
// by browser keyboard events (eg. ArrowLeft, PageUp or " ") or
// the lower case names commonly used by terminal libraries (eg. left,
// pgup or space), optionally prefixed with "shift+".
package keynav

import (
	"strings"

	"cloudeng.io/datepicker/calendar"
)

// Key represents a key that is meaningful for date navigation.
type Key int

const (
	Unknown Key = iota
	Left
	Right
	Up
	Down
	Home
	End
	PageUp
	PageDown
	Enter
	Space
)

var keyNames = map[Key]string{
	Unknown:  "unknown",
	Left:     "left",
	Right:    "right",
	Up:       "up",
	Down:     "down",
	Home:     "home",
	End:      "end",
	PageUp:   "pgup",
	PageDown: "pgdown",
	Enter:    "enter",
	Space:    "space",
}

var keys = map[string]Key{
	// Browser KeyboardEvent.key values.
	"ArrowLeft":  Left,
	"ArrowRight": Right,
	"ArrowUp":    Up,
	"ArrowDown":  Down,
	"Home":       Home,
	"End":        End,
	"PageUp":     PageUp,
	"PageDown":   PageDown,
	"Enter":      Enter,
	" ":          Space,
	"Spacebar":   Space,
	// Terminal names.
	"left":     Left,
	"right":    Right,
	"up":       Up,
	"down":     Down,
	"home":     Home,
	"end":      End,
	"pgup":     PageUp,
	"pageup":   PageUp,
	"pgdown":   PageDown,
	"pgdn":     PageDown,
	"pagedown": PageDown,
	"enter":    Enter,
	"return":   Enter,
	"space":    Space,
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return keyNames[Unknown]
}

// ParseKey returns the Key for name, or Unknown.
func ParseKey(name string) Key {
	if k, ok := keys[name]; ok {
		return k
	}
	return Unknown
}

// Event represents a single key press.
type Event struct {
	Key   Key
	Shift bool
}

const shiftPrefix = "shift+"

// ParseEvent parses a key name with an optional, case insensitive,
// "shift+" prefix.
func ParseEvent(name string) Event {
	if len(name) > len(shiftPrefix) && strings.EqualFold(name[:len(shiftPrefix)], shiftPrefix) {
		return Event{Key: ParseKey(name[len(shiftPrefix):]), Shift: true}
	}
	return Event{Key: ParseKey(name)}
}

func (e Event) String() string {
	if e.Shift {
		return shiftPrefix + e.Key.String()
	}
	return e.Key.String()
}

// Action is the action to be taken in response to an Event.
type Action int

const (
	// None indicates that the event is not handled, any default
	// action associated with it should not be suppressed.
	None Action = iota
	// Move indicates that the focus should move to a new date.
	Move
	// Select indicates that the focused date should be selected.
	Select
)

func (a Action) String() string {
	switch a {
	case Move:
		return "move"
	case Select:
		return "select"
	}
	return "none"
}

// Target returns the date that focus would move to in response to ev
// before any clamping is applied. Paging by month, or by year when
// shift is held, preserves the day of the month, clamped to the number
// of days in the target month. For Enter and Space the focused date is
// returned with the Select action.
func Target(ev Event, focused calendar.Date) (calendar.Date, Action) {
	switch ev.Key {
	case Left:
		return calendar.AddDays(focused, -1), Move
	case Right:
		return calendar.AddDays(focused, 1), Move
	case Up:
		return calendar.AddDays(focused, -7), Move
	case Down:
		return calendar.AddDays(focused, 7), Move
	case Home:
		return calendar.FirstOfMonth(focused), Move
	case End:
		return calendar.LastOfMonth(focused), Move
	case PageUp:
		if ev.Shift {
			return calendar.AddYearsClamped(focused, -1), Move
		}
		return calendar.AddMonthsClamped(focused, -1), Move
	case PageDown:
		if ev.Shift {
			return calendar.AddYearsClamped(focused, 1), Move
		}
		return calendar.AddMonthsClamped(focused, 1), Move
	case Enter, Space:
		return focused, Select
	}
	return focused, None
}

// Bounds represents the optional earliest and latest dates that may
// receive focus.
type Bounds struct {
	Min, Max calendar.Date
}

// Clamp is like the function Clamp.
func (b Bounds) Clamp(d calendar.Date) calendar.Date {
	return Clamp(d, b.Min, b.Max)
}

// Clamp returns minDate if d is before it, or maxDate if d is after it,
// otherwise d. Zero bounds are ignored and minDate takes precedence.
func Clamp(d, minDate, maxDate calendar.Date) calendar.Date {
	if !minDate.IsZero() && d.Before(minDate) {
		return minDate
	}
	if !maxDate.IsZero() && d.After(maxDate) {
		return maxDate
	}
	return d
}

// Result is the outcome of resolving an Event.
type Result struct {
	Action Action
	// Target is the clamped date to move focus to for Move and the
	// date to be selected for Select.
	Target calendar.Date
	// MonthChanged is true if Target is not in the currently
	// displayed month and hence the displayed month must follow.
	MonthChanged bool
}

// Resolve determines the Result of ev given the currently focused date
// and displayed month.
func Resolve(ev Event, focused, currentMonth calendar.Date, bounds Bounds) Result {
	target, action := Target(ev, focused)
	switch action {
	case Move:
		target = bounds.Clamp(target)
		return Result{
			Action:       Move,
			Target:       target,
			MonthChanged: !target.SameMonth(currentMonth),
		}
	case Select:
		return Result{Action: Select, Target: focused}
	}
	return Result{}
}
