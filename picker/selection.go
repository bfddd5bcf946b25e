// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import "cloudeng.io/datepicker/calendar"

// Selection represents a selected value, a single date or a date range,
// that is either controlled or uncontrolled. A controlled value is owned
// by the caller: the Controller never changes it and instead proposes
// new values via the change function, the caller then uses Update to
// accept them. An uncontrolled value is owned by the Controller which
// updates it before calling the change function. Controlled-ness is
// fixed when the Selection is created.
type Selection[T comparable] struct {
	controlled bool
	value      T
	onChange   func(T)
}

// Controlled returns a Selection whose value is owned by the caller.
// onChange may be nil.
func Controlled[T comparable](value T, onChange func(T)) *Selection[T] {
	return &Selection[T]{controlled: true, value: value, onChange: onChange}
}

// Uncontrolled returns a Selection whose value is owned by the
// Controller and is initially set to initial. onChange may be nil.
func Uncontrolled[T comparable](initial T, onChange func(T)) *Selection[T] {
	return &Selection[T]{value: initial, onChange: onChange}
}

// SingleSelection is a Selection of a single date.
type SingleSelection = Selection[calendar.Date]

// RangeSelection is a Selection of a date range.
type RangeSelection = Selection[calendar.Range]

// IsControlled returns true if the value is owned by the caller.
func (s *Selection[T]) IsControlled() bool {
	return s.controlled
}

// Value returns the current value.
func (s *Selection[T]) Value() T {
	return s.value
}

// Update sets the value of a controlled Selection. It panics if called
// for an uncontrolled Selection.
func (s *Selection[T]) Update(value T) {
	if !s.controlled {
		panic("picker: Update called for an uncontrolled selection")
	}
	s.value = value
}

// propose applies value if the selection is uncontrolled and then
// calls the change function.
func (s *Selection[T]) propose(value T) {
	if !s.controlled {
		s.value = value
	}
	if s.onChange != nil {
		s.onChange(value)
	}
}
