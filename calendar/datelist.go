// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"slices"
	"strings"
)

// DateList is a list of dates.
type DateList []Date

// Contains returns true if d is in the list.
func (dl DateList) Contains(d Date) bool {
	for _, dd := range dl {
		if dd == d {
			return true
		}
	}
	return false
}

// Sort sorts the list in place.
func (dl DateList) Sort() {
	slices.SortFunc(dl, Compare)
}

// Parse a comma separated list of dates in YYYY-MM-DD format.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(DateList, 0, len(parts))
	for _, part := range parts {
		date, err := ParseISO(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		d = append(d, date)
	}
	*dl = d
	return nil
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.ISO())
	}
	return out.String()
}
