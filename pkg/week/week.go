package week

import (
	"fmt"
	"iter"
	"time"

	"github.com/dmitrymomot/weekkit/pkg/weekday"
)

// DaysPerWeek is the fixed length of a calendar week.
const DaysPerWeek = 7

const weekDuration = DaysPerWeek * 24 * time.Hour

// Week is a run of seven consecutive calendar days, identified solely by
// the date it starts on. The zero value is the week starting on the zero
// time.Time date.
//
// Week is comparable: values constructed by this package normalize their
// start date to midnight UTC, so == and use as a map key are consistent
// with Equal.
type Week struct {
	start time.Time
}

// New constructs a Week starting on the given date. The caller is
// responsible for start matching the intended first-weekday convention;
// only the clock part is normalized away.
func New(start time.Time) Week {
	return Week{start: midnightUTC(start)}
}

// FromDate returns the week containing the given date: the date is snapped
// back to the most recent day matching the configured first weekday, or
// kept as is when it already falls on it.
//
//	week.FromDate(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
//	// starts 2020-12-28 (Monday)
func FromDate(t time.Time, opts ...Option) Week {
	cfg := applyOptions(opts)
	return fromDate(midnightUTC(t), cfg.firstWeekday)
}

// FromNumber returns week number of the given year under the configured
// first-weekday convention. Numbering is midpoint anchored: week 1 is the
// week whose fourth day is the first of its weekday in the year, so
// FromNumber(y, n).Number() == n for every n valid in year y.
//
// The number is not range checked. Values outside 1..52/53 are accepted
// and yield the arithmetically consistent week that far from week 1, which
// belongs to a neighboring year: FromNumber(2021, 0) is 2020-W53.
func FromNumber(year, number int, opts ...Option) Week {
	cfg := applyOptions(opts)
	return fromNumber(year, number, cfg.firstWeekday)
}

// Now returns the week containing the current date. The clock defaults to
// time.Now and can be substituted with WithClock.
func Now(opts ...Option) Week {
	cfg := applyOptions(opts)
	return fromDate(midnightUTC(cfg.now()), cfg.firstWeekday)
}

func fromDate(d time.Time, first weekday.Weekday) Week {
	back := weekday.FromDate(d).DaysSince(first)
	return Week{start: d.AddDate(0, 0, -back)}
}

func fromNumber(year, number int, first weekday.Weekday) Week {
	// Anchor on the weekday three days after the first weekday (Thursday
	// under the ISO Monday convention): its first occurrence in the year
	// is the midpoint of week 1.
	firstMidday := first.Add(3).FirstOfYear(year)
	return Week{start: firstMidday.AddDate(0, 0, DaysPerWeek*(number-1)-3)}
}

// Start returns the first date of the week.
func (w Week) Start() time.Time {
	return w.start
}

// End returns the date exactly seven days after Start. It is the first
// date no longer inside the week.
func (w Week) End() time.Time {
	return w.start.AddDate(0, 0, DaysPerWeek)
}

// FirstWeekday returns the weekday of Start.
func (w Week) FirstWeekday() weekday.Weekday {
	return weekday.FromDate(w.start)
}

// Year returns the calendar year the week belongs to: the year of its
// fourth day (Start plus three days). A week spanning a year boundary is
// assigned to whichever year holds its midpoint.
//
//	week.New(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)).Year() // 2025
func (w Week) Year() int {
	return w.midpoint().Year()
}

// Number returns the week's number within Year, counting from 1.
// Consecutive weeks increment by exactly one and the count resets at each
// year's first week.
func (w Week) Number() int {
	firstMidday := w.FirstWeekday().Add(3).FirstOfYear(w.Year())
	return 1 + int(w.midpoint().Sub(firstMidday)/weekDuration)
}

// WeekdayDate returns the date within this week falling on the given
// weekday.
//
//	w := week.New(time.Date(2021, 9, 27, 0, 0, 0, 0, time.UTC))
//	w.WeekdayDate(weekday.Friday) // 2021-10-01
func (w Week) WeekdayDate(d weekday.Weekday) time.Time {
	return w.start.AddDate(0, 0, d.DaysSince(w.FirstWeekday()))
}

// Contains reports whether the given date falls inside the half-open
// window [Start, End). The clock part of t is ignored.
func (w Week) Contains(t time.Time) bool {
	d := midnightUTC(t)
	return !d.Before(w.start) && d.Before(w.End())
}

// Days returns the week's seven dates in ascending order as a restartable
// range-over-func sequence.
//
//	for d := range w.Days() {
//	    fmt.Println(d.Format(time.DateOnly))
//	}
func (w Week) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for offset := range DaysPerWeek {
			if !yield(w.start.AddDate(0, 0, offset)) {
				return
			}
		}
	}
}

// Add returns the week n whole weeks later. Negative n moves backwards.
func (w Week) Add(n int) Week {
	return Week{start: w.start.AddDate(0, 0, DaysPerWeek*n)}
}

// Sub returns the week n whole weeks earlier. Equivalent to Add(-n).
func (w Week) Sub(n int) Week {
	return w.Add(-n)
}

// AddDuration shifts the week by a duration that must be an exact multiple
// of seven days, returning ErrNotWholeWeeks otherwise.
func (w Week) AddDuration(d time.Duration) (Week, error) {
	if d%weekDuration != 0 {
		return Week{}, ErrNotWholeWeeks
	}
	return w.Add(int(d / weekDuration)), nil
}

// SubDuration shifts the week backwards by a duration that must be an
// exact multiple of seven days, returning ErrNotWholeWeeks otherwise.
func (w Week) SubDuration(d time.Duration) (Week, error) {
	return w.AddDuration(-d)
}

// Equal reports whether both weeks start on the same date.
func (w Week) Equal(o Week) bool {
	return w.start.Equal(o.start)
}

// Before reports whether w starts before o.
func (w Week) Before(o Week) bool {
	return w.start.Before(o.start)
}

// After reports whether w starts after o.
func (w Week) After(o Week) bool {
	return w.start.After(o.start)
}

// Compare orders weeks by start date: -1 if w is earlier than o, 0 if they
// are the same week, +1 if later.
func (w Week) Compare(o Week) int {
	return w.start.Compare(o.start)
}

// String returns the canonical "year-Wnumber" form, e.g. "2021-W03".
func (w Week) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year(), w.Number())
}

func (w Week) midpoint() time.Time {
	return w.start.AddDate(0, 0, 3)
}

// midnightUTC reduces a time.Time to its calendar date at midnight UTC,
// using the date in the value's own location.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
