// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package keynav_test

import (
	"fmt"
	"testing"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/picker/keynav"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name string
		want keynav.Event
	}{
		{"ArrowLeft", keynav.Event{Key: keynav.Left}},
		{"ArrowRight", keynav.Event{Key: keynav.Right}},
		{"ArrowUp", keynav.Event{Key: keynav.Up}},
		{"ArrowDown", keynav.Event{Key: keynav.Down}},
		{"Home", keynav.Event{Key: keynav.Home}},
		{"End", keynav.Event{Key: keynav.End}},
		{"PageUp", keynav.Event{Key: keynav.PageUp}},
		{"PageDown", keynav.Event{Key: keynav.PageDown}},
		{"Enter", keynav.Event{Key: keynav.Enter}},
		{" ", keynav.Event{Key: keynav.Space}},
		{"left", keynav.Event{Key: keynav.Left}},
		{"pgup", keynav.Event{Key: keynav.PageUp}},
		{"pgdown", keynav.Event{Key: keynav.PageDown}},
		{"space", keynav.Event{Key: keynav.Space}},
		{"shift+pgup", keynav.Event{Key: keynav.PageUp, Shift: true}},
		{"Shift+PageDown", keynav.Event{Key: keynav.PageDown, Shift: true}},
		{"Tab", keynav.Event{Key: keynav.Unknown}},
		{"shift+", keynav.Event{Key: keynav.Unknown}},
		{"", keynav.Event{Key: keynav.Unknown}},
	} {
		if got, want := keynav.ParseEvent(tc.name), tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.name, got, want)
		}
	}
	if got, want := keynav.ParseEvent("Shift+PageUp").String(), "shift+pgup"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := keynav.Key(99).String(), "unknown"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTarget(t *testing.T) {
	nd := calendar.New
	focused := nd(2026, 1, 31)
	for _, tc := range []struct {
		key    string
		want   calendar.Date
		action keynav.Action
	}{
		{"left", nd(2026, 1, 30), keynav.Move},
		{"right", nd(2026, 2, 1), keynav.Move},
		{"up", nd(2026, 1, 24), keynav.Move},
		{"down", nd(2026, 2, 7), keynav.Move},
		{"home", nd(2026, 1, 1), keynav.Move},
		{"end", nd(2026, 1, 31), keynav.Move},
		{"pgup", nd(2025, 12, 31), keynav.Move},
		{"pgdown", nd(2026, 2, 28), keynav.Move},
		{"shift+pgup", nd(2025, 1, 31), keynav.Move},
		{"shift+pgdown", nd(2027, 1, 31), keynav.Move},
		{"enter", focused, keynav.Select},
		{"space", focused, keynav.Select},
		{"tab", focused, keynav.None},
	} {
		got, action := keynav.Target(keynav.ParseEvent(tc.key), focused)
		if want := tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.key, got, want)
		}
		if got, want := action, tc.action; got != want {
			t.Errorf("%v: got %v, want %v", tc.key, got, want)
		}
	}
}

func TestPaging(t *testing.T) {
	nd := calendar.New
	for _, tc := range []struct {
		key           string
		focused, want calendar.Date
	}{
		{"shift+pgup", nd(2026, 2, 28), nd(2025, 2, 28)},
		{"shift+pgup", nd(2024, 2, 29), nd(2023, 2, 28)},
		{"shift+pgdown", nd(2024, 2, 29), nd(2025, 2, 28)},
		{"shift+pgup", nd(2028, 2, 29), nd(2027, 2, 28)},
		{"pgup", nd(2024, 3, 31), nd(2024, 2, 29)},
		{"pgup", nd(2025, 3, 31), nd(2025, 2, 28)},
		{"pgdown", nd(2026, 1, 30), nd(2026, 2, 28)},
		{"pgdown", nd(2026, 12, 15), nd(2027, 1, 15)},
		{"pgup", nd(2026, 1, 15), nd(2025, 12, 15)},
		{"pgdown", nd(2026, 5, 31), nd(2026, 6, 30)},
	} {
		r := keynav.Resolve(keynav.ParseEvent(tc.key), tc.focused, tc.focused, keynav.Bounds{})
		if got, want := r.Target, tc.want; got != want {
			t.Errorf("%v: %v: got %v, want %v", tc.key, tc.focused, got, want)
		}
		if !r.MonthChanged {
			t.Errorf("%v: %v: month should have changed", tc.key, tc.focused)
		}
	}
}

func TestClamp(t *testing.T) {
	nd := calendar.New
	minDate, maxDate := nd(2026, 1, 10), nd(2026, 1, 20)
	var none calendar.Date
	for _, tc := range []struct {
		d, min, max, want calendar.Date
	}{
		{nd(2026, 1, 5), minDate, maxDate, minDate},
		{nd(2026, 1, 25), minDate, maxDate, maxDate},
		{nd(2026, 1, 15), minDate, maxDate, nd(2026, 1, 15)},
		{nd(2026, 1, 5), none, maxDate, nd(2026, 1, 5)},
		{nd(2026, 1, 25), minDate, none, nd(2026, 1, 25)},
		{nd(2026, 1, 5), none, none, nd(2026, 1, 5)},
		// Reversed bounds, min wins.
		{nd(2026, 1, 15), maxDate, minDate, maxDate},
	} {
		if got, want := keynav.Clamp(tc.d, tc.min, tc.max), tc.want; got != want {
			t.Errorf("%v: [%v, %v]: got %v, want %v", tc.d, tc.min, tc.max, got, want)
		}
	}
}

func TestResolve(t *testing.T) {
	nd := calendar.New
	bounds := keynav.Bounds{Min: nd(2026, 1, 10), Max: nd(2026, 2, 5)}
	month := nd(2026, 1, 1)
	for _, tc := range []struct {
		key     string
		focused calendar.Date
		want    keynav.Result
	}{
		{"left", nd(2026, 1, 10), keynav.Result{Action: keynav.Move, Target: nd(2026, 1, 10)}},
		{"up", nd(2026, 1, 12), keynav.Result{Action: keynav.Move, Target: nd(2026, 1, 10)}},
		{"right", nd(2026, 1, 15), keynav.Result{Action: keynav.Move, Target: nd(2026, 1, 16)}},
		{"down", nd(2026, 1, 30), keynav.Result{Action: keynav.Move, Target: nd(2026, 2, 5), MonthChanged: true}},
		{"pgdown", nd(2026, 1, 15), keynav.Result{Action: keynav.Move, Target: nd(2026, 2, 5), MonthChanged: true}},
		{"home", nd(2026, 1, 15), keynav.Result{Action: keynav.Move, Target: nd(2026, 1, 10)}},
		{"end", nd(2026, 1, 15), keynav.Result{Action: keynav.Move, Target: nd(2026, 1, 31)}},
		{"enter", nd(2026, 1, 15), keynav.Result{Action: keynav.Select, Target: nd(2026, 1, 15)}},
		{"x", nd(2026, 1, 15), keynav.Result{}},
	} {
		got := keynav.Resolve(keynav.ParseEvent(tc.key), tc.focused, month, bounds)
		if want := tc.want; got != want {
			t.Errorf("%v: %v: got %+v, want %+v", tc.key, tc.focused, got, want)
		}
	}
}

func ExampleResolve() {
	focused := calendar.New(2024, 2, 29)
	r := keynav.Resolve(keynav.ParseEvent("shift+PageUp"), focused, focused, keynav.Bounds{})
	fmt.Println(r.Action, r.Target, r.MonthChanged)
	// Output:
	// move 2023-02-28 true
}
