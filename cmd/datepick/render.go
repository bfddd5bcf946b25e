// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/picker"
	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth  = 4
	monthWidth = cellWidth * calendar.GridColumns
)

type styles struct {
	title, header, cell                  lipgloss.Style
	outside, disabled, today, focused    lipgloss.Style
	selected, inRange, preview, monthGap lipgloss.Style
}

func newStyles() styles {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	return styles{
		title:    lipgloss.NewStyle().Width(monthWidth).Align(lipgloss.Center).Bold(true),
		header:   cell.Foreground(lipgloss.Color("8")),
		cell:     cell,
		outside:  cell.Foreground(lipgloss.Color("240")),
		disabled: cell.Foreground(lipgloss.Color("240")).Strikethrough(true),
		today:    cell.Bold(true).Foreground(lipgloss.Color("3")),
		focused:  cell.Underline(true),
		selected: cell.Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
		inRange:  cell.Background(lipgloss.Color("24")),
		preview:  cell.Background(lipgloss.Color("236")),
		monthGap: lipgloss.NewStyle().Width(3),
	}
}

// renderer renders month grids either using terminal styles or,
// if plain is set, using ascii markers:
//
//	>  focused
//	*  selected date or range start or end
//	x  disabled, including within a range
//	~  within the selected or previewed range
//	!  today
type renderer struct {
	plain  bool
	styles styles
}

func newRenderer(plain bool) *renderer {
	return &renderer{plain: plain, styles: newStyles()}
}

func (r *renderer) weekdays(names []string) string {
	var out strings.Builder
	for _, n := range names {
		if rn := []rune(n); len(rn) > cellWidth-1 {
			n = string(rn[:cellWidth-1])
		}
		if r.plain {
			fmt.Fprintf(&out, "%*s", cellWidth, n)
			continue
		}
		out.WriteString(r.styles.header.Render(n))
	}
	return out.String()
}

func plainMarker(c picker.Cell) string {
	switch {
	case c.Selected || c.RangeStart || c.RangeEnd:
		return "*"
	case c.Disabled:
		return "x"
	case c.InRange || c.Preview:
		return "~"
	case c.Today:
		return "!"
	}
	return " "
}

func (r *renderer) cell(c picker.Cell) string {
	if r.plain {
		focus := " "
		if c.Focused {
			focus = ">"
		}
		return focus + fmt.Sprintf("%2s", c.Label) + plainMarker(c)
	}
	st := r.styles.cell
	switch {
	case c.Selected || c.RangeStart || c.RangeEnd:
		st = r.styles.selected
	case c.Disabled:
		st = r.styles.disabled
	case c.InRange:
		st = r.styles.inRange
	case c.Preview:
		st = r.styles.preview
	case c.OutsideMonth:
		st = r.styles.outside
	case c.Today:
		st = r.styles.today
	}
	if c.Focused {
		st = st.Inherit(r.styles.focused)
	}
	return st.Render(c.Label)
}

// month renders a title, the weekday names and 6 rows of 7 dates.
func (r *renderer) month(m picker.Month, weekdays []string) string {
	lines := make([]string, 0, calendar.GridRows+2)
	if r.plain {
		lines = append(lines, lipgloss.PlaceHorizontal(monthWidth, lipgloss.Center, m.Title))
	} else {
		lines = append(lines, r.styles.title.Render(m.Title))
	}
	lines = append(lines, r.weekdays(weekdays))
	for _, row := range m.Rows() {
		var line strings.Builder
		for _, c := range row {
			line.WriteString(r.cell(c))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// months renders the months side by side.
func (r *renderer) months(ms []picker.Month, weekdays []string) string {
	blocks := make([]string, 0, len(ms)*2)
	for i, m := range ms {
		if i > 0 {
			blocks = append(blocks, r.styles.monthGap.Render(""))
		}
		blocks = append(blocks, r.month(m, weekdays))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
