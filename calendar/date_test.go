// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/datepicker/calendar"
	"gopkg.in/yaml.v3"
)

func TestCompare(t *testing.T) {
	nd := calendar.New
	for _, tc := range []struct {
		a, b calendar.Date
		cmp  int
	}{
		{nd(2026, 1, 1), nd(2026, 1, 1), 0},
		{nd(2026, 1, 1), nd(2026, 1, 2), -1},
		{nd(2026, 1, 31), nd(2026, 2, 1), -1},
		{nd(2025, 12, 31), nd(2026, 1, 1), -1},
		{nd(2027, 1, 1), nd(2026, 12, 31), 1},
		{nd(2026, 3, 1), nd(2026, 2, 28), 1},
	} {
		if got, want := calendar.Compare(tc.a, tc.b), tc.cmp; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := calendar.Compare(tc.b, tc.a), -tc.cmp; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.b, tc.a, got, want)
		}
		if got, want := tc.a.Before(tc.b), tc.cmp < 0; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := tc.a.After(tc.b), tc.cmp > 0; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := tc.a.Equal(tc.b), tc.cmp == 0; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
	a, b := nd(2026, 1, 1), nd(2026, 1, 2)
	if got, want := calendar.Min(a, b), a; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Max(a, b), b; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestISO(t *testing.T) {
	nd := calendar.New
	for _, tc := range []struct {
		d   calendar.Date
		iso string
	}{
		{nd(2026, 1, 18), "2026-01-18"},
		{nd(999, 12, 1), "0999-12-01"},
		{nd(2024, 2, 29), "2024-02-29"},
		{nd(1, 1, 1), "0001-01-01"},
	} {
		if got, want := calendar.ToISO(tc.d), tc.iso; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		d, ok := calendar.FromISO(tc.iso)
		if !ok {
			t.Errorf("%v: failed to parse", tc.iso)
			continue
		}
		if got, want := d, tc.d; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []string{
		"",
		"2026-1-18",
		"26-01-18",
		"2026/01/18",
		"2026-01-18T00:00:00Z",
		" 2026-01-18",
		"20260-01-18",
		"abcd-ef-gh",
	} {
		if _, ok := calendar.FromISO(tc); ok {
			t.Errorf("%q: expected parse to fail", tc)
		}
		if _, err := calendar.ParseISO(tc); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", tc, err)
		}
	}

	// FromISO does not validate, ParseISO does.
	d, ok := calendar.FromISO("2023-02-29")
	if !ok {
		t.Fatalf("failed to parse")
	}
	if got, want := d, nd(2023, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := calendar.ParseISO("2023-02-29"); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := calendar.ParseISO("2024-13-01"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestISORoundTrip(t *testing.T) {
	for year := 1000; year <= 9999; year += 97 {
		for month := time.January; month <= time.December; month++ {
			for day := 1; day <= calendar.DaysInMonth(year, month); day++ {
				d := calendar.New(year, month, day)
				rd, ok := calendar.FromISO(calendar.ToISO(d))
				if !ok || rd != d {
					t.Fatalf("%v: got %v, %v", d, rd, ok)
				}
			}
		}
	}
}

func TestValid(t *testing.T) {
	nd := calendar.New
	for _, tc := range []struct {
		d     calendar.Date
		valid bool
	}{
		{nd(2024, 2, 29), true},
		{nd(2023, 2, 29), false},
		{nd(2026, 4, 31), false},
		{nd(2026, 13, 1), false},
		{nd(2026, 0, 1), false},
		{nd(2026, 1, 0), false},
		{calendar.Date{}, false},
	} {
		if got, want := tc.d.Valid(), tc.valid; got != want {
			t.Errorf("%v: got %v, want %v", tc.d, got, want)
		}
	}
	if !(calendar.Date{}).IsZero() {
		t.Errorf("zero date is not zero")
	}
}

func TestTime(t *testing.T) {
	d := calendar.New(2026, 1, 18)
	tm := d.Time(time.UTC)
	if got, want := tm, time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.FromTime(tm.Add(23*time.Hour)), d; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.Today(), calendar.FromTime(time.Now()); got != want {
		// Can only differ if the test runs across midnight.
		t.Logf("got %v, want %v", got, want)
	}
}

func TestYAML(t *testing.T) {
	type cfg struct {
		When  calendar.Date     `yaml:"when"`
		Empty calendar.Date     `yaml:"empty"`
		Span  calendar.Range    `yaml:"span"`
		List  []calendar.Date   `yaml:"list"`
		Dates calendar.DateList `yaml:"dates"`
	}
	var c cfg
	err := yaml.Unmarshal([]byte(`
when: 2026-01-18
empty: ""
span:
  start: 2026-02-01
  end: 2026-02-14
list: [2026-03-01, 2026-03-02]
dates:
  - 2026-12-25
`), &c)
	if err != nil {
		t.Fatal(err)
	}
	nd := calendar.New
	if got, want := c.When, nd(2026, 1, 18); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !c.Empty.IsZero() {
		t.Errorf("got %v, want zero date", c.Empty)
	}
	if got, want := c.Span, calendar.NewRange(nd(2026, 2, 1), nd(2026, 2, 14)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(c.List), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !c.Dates.Contains(nd(2026, 12, 25)) {
		t.Errorf("missing date: %v", c.Dates)
	}

	out, err := yaml.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var rt cfg
	if err := yaml.Unmarshal(out, &rt); err != nil {
		t.Fatal(err)
	}
	if got, want := rt.Span, c.Span; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rt.When, c.When; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := yaml.Unmarshal([]byte("when: 2023-02-29\n"), &c); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
