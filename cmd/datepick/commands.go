// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloudeng.io/cmdutil/structdoc"
	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/datepicker/picker"
	"cloudeng.io/datepicker/picker/keynav"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// session owns a picker Controller and accepts all of the changes it
// proposes for controlled values.
type session struct {
	ctl      *picker.Controller
	out      io.Writer
	renderer *renderer
	printer  *message.Printer
}

func newSession(ctx context.Context, cfg picker.Config, out io.Writer, r *renderer) (*session, error) {
	s := &session{out: out, renderer: r}
	ctl, err := picker.New(ctx, cfg.Options(s.dateChanged, s.rangeChanged))
	if err != nil {
		return nil, err
	}
	s.ctl = ctl
	s.printer = message.NewPrinter(ctl.Formatter().Tag())
	return s, nil
}

func (s *session) dateChanged(d calendar.Date) {
	fmt.Fprintf(s.out, "change: %v\n", s.formatDate(d))
	if s.ctl.IsControlled() {
		s.ctl.SetValue(d)
	}
}

func (s *session) rangeChanged(r calendar.Range) {
	fmt.Fprintf(s.out, "change: %v\n", s.formatRange(r))
	if s.ctl.IsControlled() {
		s.ctl.SetRangeValue(r)
	}
}

func (s *session) formatDate(d calendar.Date) string {
	if d.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%v (%v)", d, s.ctl.Formatter().Date(d))
}

func (s *session) formatRange(r calendar.Range) string {
	switch {
	case r.Empty():
		return "none"
	case r.Complete():
		return s.printer.Sprintf("%v to %v, %d days", r.Start, r.End, r.Days())
	}
	return fmt.Sprintf("%v to %v", s.formatDate(r.Start), s.formatDate(r.End))
}

func (s *session) printSelection() {
	if s.ctl.IsRangeMode() {
		fmt.Fprintf(s.out, "range: %v\n", s.formatRange(s.ctl.RangeValue()))
		return
	}
	fmt.Fprintf(s.out, "value: %v\n", s.formatDate(s.ctl.Value()))
}

func (s *session) printMonths(n int) {
	snap := s.ctl.Snapshot()
	fmt.Fprintln(s.out, s.renderer.months(s.ctl.Months(max(n, 1)), snap.WeekdayNames))
	if c := s.ctl.Constraints(); !c.Empty() {
		fmt.Fprintf(s.out, "constraints: %v\n", c)
	}
}

// parseMonth parses YYYY-MM.
func parseMonth(val string) (calendar.Date, error) {
	d, err := calendar.ParseISO(val + "-01")
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%q is not of the form YYYY-MM: %w", val, calendar.ErrInvalidDate)
	}
	return d, nil
}

func runGrid(ctx context.Context, fv *gridFlags, args []string, out io.Writer) error {
	s, closer, err := fv.setup(ctx, out)
	if err != nil {
		return err
	}
	defer closer.Close()
	if len(args) == 1 {
		month, err := parseMonth(args[0])
		if err != nil {
			return err
		}
		s.ctl.SetCurrentMonth(month)
	}
	s.printMonths(fv.Months)
	s.printSelection()
	return nil
}

func runKeys(ctx context.Context, fv *keysFlags, args []string, out io.Writer) error {
	s, closer, err := fv.setup(ctx, out)
	if err != nil {
		return err
	}
	defer closer.Close()
	for _, arg := range args {
		ev := keynav.ParseEvent(arg)
		if !s.ctl.HandleKey(ev) {
			fmt.Fprintf(out, "%q: ignored\n", arg)
			continue
		}
		fmt.Fprintf(out, "%v: focus %v, month %v\n", ev, s.ctl.FocusedDate(),
			s.ctl.Formatter().MonthYear(s.ctl.CurrentMonth()))
	}
	s.printMonths(1)
	s.printSelection()
	return nil
}

func runSelect(ctx context.Context, fv *selectFlags, args []string, out io.Writer) error {
	dates := make([]calendar.Date, len(args))
	for i, arg := range args {
		d, err := calendar.ParseISO(arg)
		if err != nil {
			return err
		}
		dates[i] = d
	}
	var hover calendar.Date
	if len(fv.Hover) > 0 {
		var err error
		if hover, err = calendar.ParseISO(fv.Hover); err != nil {
			return fmt.Errorf("--hover: %w", err)
		}
	}
	s, closer, err := fv.setup(ctx, out)
	if err != nil {
		return err
	}
	defer closer.Close()
	for _, d := range dates {
		if !s.ctl.SelectDate(d) {
			fmt.Fprintf(out, "%v: disabled\n", d)
			continue
		}
		s.ctl.SetFocusedDate(d)
	}
	if !hover.IsZero() {
		s.ctl.SetHoveredDate(hover)
	}
	s.printMonths(1)
	s.printSelection()
	return nil
}

func exampleConfig() picker.Config {
	return picker.Config{
		Mode: picker.RangeMode,
		DefaultRange: &calendar.Range{
			Start: calendar.New(2026, 1, 12),
			End:   calendar.New(2026, 1, 16),
		},
		Min:             calendar.New(2026, 1, 1),
		Max:             calendar.New(2026, 12, 31),
		Disabled:        []calendar.Date{calendar.New(2026, 1, 1), calendar.New(2026, 12, 25)},
		DisableWeekends: true,
		Locale: locale.Config{
			Locale:       "en-GB",
			WeekStartsOn: locale.Weekday(time.Monday),
		},
	}
}

func runConfig(fv *configFlags, out io.Writer) error {
	if fv.Example {
		buf, err := yaml.Marshal(exampleConfig())
		if err != nil {
			return err
		}
		_, err = out.Write(buf)
		return err
	}
	desc, err := structdoc.Describe(&picker.Config{}, "cmd", "YAML configuration file options\n")
	if err != nil {
		return err
	}
	fmt.Fprint(out, desc.Detail)
	fmt.Fprint(out, structdoc.FormatFields(0, 2, desc.Fields))
	return nil
}
