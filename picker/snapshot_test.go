// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/datepicker/picker"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	c := newController(t, picker.Options{
		Single:  picker.Uncontrolled(nd(2026, 1, 20), nil),
		MinDate: nd(2026, 1, 5),
	})
	c.SetFocusedDate(nd(2026, 1, 22))
	s := c.Snapshot()
	require.False(t, s.RangeMode)
	require.Equal(t, nd(2026, 1, 20), s.Value)
	require.Equal(t, nd(2026, 1, 22), s.FocusedDate)
	require.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, s.WeekdayNames)

	m := s.Month
	require.Equal(t, nd(2026, 1, 1), m.Anchor)
	require.Equal(t, "January 2026", m.Title)
	require.Equal(t, nd(2025, 12, 28), m.Cells[0].Date)
	require.Equal(t, nd(2026, 2, 7), m.Cells[calendar.GridCells-1].Date)

	flags := map[calendar.Date][]string{}
	for _, cell := range m.Cells {
		var set []string
		for _, f := range []struct {
			name string
			on   bool
		}{
			{"disabled", cell.Disabled},
			{"selected", cell.Selected},
			{"today", cell.Today},
			{"outside", cell.OutsideMonth},
			{"focused", cell.Focused},
			{"range", cell.InRange || cell.RangeStart || cell.RangeEnd || cell.Preview},
		} {
			if f.on {
				set = append(set, f.name)
			}
		}
		flags[cell.Date] = set
	}
	require.Equal(t, []string{"disabled", "outside"}, flags[nd(2025, 12, 28)])
	require.Equal(t, []string{"disabled"}, flags[nd(2026, 1, 4)])
	require.Nil(t, flags[nd(2026, 1, 5)])
	require.Equal(t, []string{"today"}, flags[nd(2026, 1, 18)])
	require.Equal(t, []string{"selected"}, flags[nd(2026, 1, 20)])
	require.Equal(t, []string{"focused"}, flags[nd(2026, 1, 22)])
	require.Equal(t, []string{"outside"}, flags[nd(2026, 2, 1)])
	require.Equal(t, "20", m.Cells[23].Label)

	rows := m.Rows()
	require.Equal(t, m.Cells[0], rows[0][0])
	require.Equal(t, m.Cells[41], rows[5][6])
	require.Equal(t, m.Cells[9], rows[1][2])
}

func TestSnapshotRange(t *testing.T) {
	c := newController(t, picker.Options{
		Range:        picker.Uncontrolled(calendar.NewRange(nd(2026, 1, 30), nd(2026, 2, 2)), nil),
		WeekStartsOn: locale.Weekday(time.Monday),
	})
	s := c.Snapshot()
	require.True(t, s.RangeMode)
	require.Equal(t, calendar.NewRange(nd(2026, 1, 30), nd(2026, 2, 2)), s.RangeValue)
	require.Equal(t, "Mon", s.WeekdayNames[0])
	require.Equal(t, nd(2025, 12, 29), s.Month.Cells[0].Date)

	months := c.Months(2)
	require.Len(t, months, 2)
	require.Equal(t, nd(2026, 1, 1), months[0].Anchor)
	require.Equal(t, nd(2026, 2, 1), months[1].Anchor)
	require.Equal(t, "February 2026", months[1].Title)

	find := func(m picker.Month, d calendar.Date, outside bool) picker.Cell {
		for _, cell := range m.Cells {
			if cell.Date == d && cell.OutsideMonth == outside {
				return cell
			}
		}
		t.Fatalf("%v not found in %v", d, m.Anchor)
		return picker.Cell{}
	}
	// The range spans both months and is shown in each.
	require.True(t, find(months[0], nd(2026, 1, 30), false).RangeStart)
	require.True(t, find(months[0], nd(2026, 1, 31), false).InRange)
	require.True(t, find(months[1], nd(2026, 1, 31), true).InRange)
	require.True(t, find(months[1], nd(2026, 2, 1), false).InRange)
	require.True(t, find(months[1], nd(2026, 2, 2), false).RangeEnd)
	require.False(t, find(months[1], nd(2026, 2, 3), false).InRange)

	require.Empty(t, c.Months(0))
	require.Empty(t, c.Months(-1))
}

func ExampleController() {
	ctx := context.Background()
	var proposed calendar.Range
	c, err := picker.New(ctx, picker.Options{
		Range: picker.Uncontrolled(calendar.Range{}, func(r calendar.Range) {
			proposed = r
		}),
		Today: func() calendar.Date { return calendar.New(2026, 1, 18) },
	})
	if err != nil {
		panic(err)
	}
	c.SelectDate(calendar.New(2026, 1, 20))
	c.SelectDate(calendar.New(2026, 1, 12))
	fmt.Println(proposed)
	s := c.Snapshot()
	fmt.Println(s.Month.Title)
	for _, cell := range s.Month.Rows()[2] {
		fmt.Printf("%s:%v ", cell.Label, cell.InRange || cell.RangeStart || cell.RangeEnd)
	}
	fmt.Println()
	// Output:
	// 2026-01-12 - 2026-01-20
	// January 2026
	// 11:false 12:true 13:true 14:true 15:true 16:true 17:true
}
