// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides locale aware formatting of month and weekday
// names and of dates for use by date pickers. Locale tags are BCP 47
// language tags, eg. en-US or de-DE, that are matched against the set
// of locales for which names are available.
package locale

import (
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/datepicker/calendar"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// DefaultTag is the locale used when none is specified.
const DefaultTag = "en-US"

// Config represents a possibly partial locale configuration. Fields
// that are not set are filled in by Resolve.
type Config struct {
	Locale        string        `yaml:"tag,omitempty" cmd:"BCP 47 locale tag, eg. en-US or de-DE"`
	WeekStartsOn  *time.Weekday `yaml:"week_starts_on,omitempty" cmd:"first day of the week, 0 for Sunday through 6 for Saturday"`
	MonthNames    []string      `yaml:"month_names,omitempty" cmd:"12 month names, January first, overriding the locale"`
	DayNames      []string      `yaml:"day_names,omitempty" cmd:"7 weekday names, Sunday first, overriding the locale"`
	DayNamesShort []string      `yaml:"day_names_short,omitempty" cmd:"7 short weekday names, returned as given, ie. not rotated to the first day of the week"`
}

// WeekStart returns the configured first day of the week or Sunday.
func (c Config) WeekStart() time.Weekday {
	if c.WeekStartsOn == nil {
		return time.Sunday
	}
	return *c.WeekStartsOn
}

// Weekday returns a pointer to wd for use with Config.WeekStartsOn.
func Weekday(wd time.Weekday) *time.Weekday {
	return &wd
}

// Resolve returns a copy of c with unset fields set from defaults.
func Resolve(c Config) Config {
	if len(c.Locale) == 0 {
		c.Locale = DefaultTag
	}
	if c.WeekStartsOn == nil {
		c.WeekStartsOn = Weekday(time.Sunday)
	}
	return c
}

// Validate returns an error if the locale tag cannot be parsed, the
// first day of the week is out of range or an override list has the
// wrong number of names.
func (c Config) Validate() error {
	if len(c.Locale) > 0 {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
	}
	if c.WeekStartsOn != nil && (*c.WeekStartsOn < time.Sunday || *c.WeekStartsOn > time.Saturday) {
		return fmt.Errorf("invalid first day of the week: %d", *c.WeekStartsOn)
	}
	for _, l := range []struct {
		name  string
		names []string
		n     int
	}{
		{"month_names", c.MonthNames, 12},
		{"day_names", c.DayNames, 7},
		{"day_names_short", c.DayNamesShort, 7},
	} {
		if len(l.names) > 0 && len(l.names) != l.n {
			return fmt.Errorf("%s: expected %d names, got %d", l.name, l.n, len(l.names))
		}
	}
	return nil
}

type layouts struct {
	monthYear string
	date      string
}

var (
	defaultLayouts = layouts{monthYear: "January 2006", date: "2 January 2006"}

	supported = []struct {
		tag     string
		locale  monday.Locale
		layouts layouts
	}{
		{"en-US", monday.LocaleEnUS, layouts{monthYear: "January 2006", date: "January 2, 2006"}},
		{"en-GB", monday.LocaleEnGB, defaultLayouts},
		{"de-DE", monday.LocaleDeDE, layouts{monthYear: "January 2006", date: "2. January 2006"}},
		{"fr-FR", monday.LocaleFrFR, defaultLayouts},
		{"es-ES", monday.LocaleEsES, layouts{monthYear: "January 2006", date: "2 de January de 2006"}},
		{"it-IT", monday.LocaleItIT, defaultLayouts},
		{"pt-PT", monday.LocalePtPT, layouts{monthYear: "January 2006", date: "2 de January de 2006"}},
		{"pt-BR", monday.LocalePtBR, layouts{monthYear: "January 2006", date: "2 de January de 2006"}},
		{"nl-NL", monday.LocaleNlNL, defaultLayouts},
		{"sv-SE", monday.LocaleSvSE, defaultLayouts},
		{"da-DK", monday.LocaleDaDK, layouts{monthYear: "January 2006", date: "2. January 2006"}},
		{"nb-NO", monday.LocaleNbNO, layouts{monthYear: "January 2006", date: "2. January 2006"}},
		{"fi-FI", monday.LocaleFiFI, layouts{monthYear: "January 2006", date: "2. January 2006"}},
		{"pl-PL", monday.LocalePlPL, defaultLayouts},
		{"cs-CZ", monday.LocaleCsCZ, layouts{monthYear: "January 2006", date: "2. January 2006"}},
		{"ru-RU", monday.LocaleRuRU, defaultLayouts},
		{"uk-UA", monday.LocaleUkUA, defaultLayouts},
		{"tr-TR", monday.LocaleTrTR, defaultLayouts},
		{"ja-JP", monday.LocaleJaJP, layouts{monthYear: "2006年1月", date: "2006年1月2日"}},
		{"zh-CN", monday.LocaleZhCN, layouts{monthYear: "2006年1月", date: "2006年1月2日"}},
		{"ko-KR", monday.LocaleKoKR, layouts{monthYear: "2006년 1월", date: "2006년 1월 2일"}},
	}

	matcher language.Matcher
)

func init() {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = language.MustParse(s.tag)
	}
	matcher = language.NewMatcher(tags)
}

// Formatter formats dates and names for a resolved locale Config.
type Formatter struct {
	cfg     Config
	tag     language.Tag
	locale  monday.Locale
	layouts layouts
}

// NewFormatter returns a Formatter for cfg, which is first resolved
// against the defaults. Tags that are valid but not supported are
// matched to the closest supported locale, falling back to en-US.
func NewFormatter(cfg Config) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = Resolve(cfg)
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return &Formatter{
		cfg:     cfg,
		tag:     tag,
		locale:  supported[idx].locale,
		layouts: supported[idx].layouts,
	}, nil
}

// Default returns a Formatter for DefaultTag.
func Default() *Formatter {
	f, _ := NewFormatter(Config{})
	return f
}

// Config returns the resolved configuration.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Tag returns the parsed locale tag.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Locale returns the name of the matched locale, eg. de_DE.
func (f *Formatter) Locale() string {
	return string(f.locale)
}

// WeekStart returns the first day of the week.
func (f *Formatter) WeekStart() time.Weekday {
	return f.cfg.WeekStart()
}

func (f *Formatter) format(d calendar.Date, layout string) string {
	return monday.Format(d.Time(time.UTC), layout, f.locale)
}

// MonthYear formats the month and year of d, eg. "January 2026".
func (f *Formatter) MonthYear(d calendar.Date) string {
	d = calendar.FirstOfMonth(d)
	if len(f.cfg.MonthNames) == 12 {
		return f.cfg.MonthNames[d.Month-1] + " " + strconv.Itoa(d.Year)
	}
	return f.format(d, f.layouts.monthYear)
}

// Date formats d as a long date, eg. "January 18, 2026".
func (f *Formatter) Date(d calendar.Date) string {
	return f.format(d.Normalize(), f.layouts.date)
}

// referenceSunday is used to generate weekday names.
var referenceSunday = calendar.New(2026, time.January, 18)

// WeekdayNames returns the short names of the days of the week starting
// with the configured first day of the week. If DayNamesShort is set it
// is returned as is, without rotation.
func (f *Formatter) WeekdayNames() []string {
	if len(f.cfg.DayNamesShort) > 0 {
		return f.cfg.DayNamesShort
	}
	return f.weekdays(nil, "Mon")
}

// LongWeekdayNames is like WeekdayNames but for the full weekday names.
// DayNames, if set, is rotated to the configured first day of the week.
func (f *Formatter) LongWeekdayNames() []string {
	return f.weekdays(f.cfg.DayNames, "Monday")
}

func (f *Formatter) weekdays(override []string, layout string) []string {
	names := make([]string, 7)
	start := int(f.WeekStart())
	for i := range names {
		wd := (start + i) % 7
		if len(override) == 7 {
			names[i] = override[wd]
			continue
		}
		names[i] = f.format(calendar.AddDays(referenceSunday, wd), layout)
	}
	return names
}

// MonthNames returns the names of the months, January first.
func (f *Formatter) MonthNames() []string {
	if len(f.cfg.MonthNames) == 12 {
		return f.cfg.MonthNames
	}
	names := make([]string, 12)
	for i := range names {
		// The standalone form of the month name.
		names[i] = f.format(calendar.New(2026, time.Month(i+1), 1), "January")
	}
	return names
}

// FormatMonthYear is a convenience function equivalent to
// NewFormatter(cfg).MonthYear(d), it falls back to the default locale
// if cfg is invalid.
func FormatMonthYear(d calendar.Date, cfg Config) string {
	return formatter(cfg).MonthYear(d)
}

// FormatDate is a convenience function equivalent to
// NewFormatter(cfg).Date(d), it falls back to the default locale
// if cfg is invalid.
func FormatDate(d calendar.Date, cfg Config) string {
	return formatter(cfg).Date(d)
}

// WeekdayNames is a convenience function equivalent to
// NewFormatter(cfg).WeekdayNames(), it falls back to the default locale
// if cfg is invalid.
func WeekdayNames(cfg Config) []string {
	return formatter(cfg).WeekdayNames()
}

func formatter(cfg Config) *Formatter {
	f, err := NewFormatter(cfg)
	if err != nil {
		return Default()
	}
	return f
}
