// Package week provides a calendar-week value type with ISO-8601 style
// numbering and a configurable first weekday.
//
// A Week is identified by the date it starts on and spans the half-open
// interval [start, start+7d). Its year and number are midpoint anchored:
// a week belongs to the year that contains its fourth day (start+3d),
// which generalizes ISO 8601's Thursday rule to any first-weekday
// convention. All dates the package accepts and returns are plain calendar
// dates carried in time.Time values; the clock part of inputs is ignored
// and every produced value sits at midnight UTC.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/weekkit/pkg/week"
//	    "github.com/dmitrymomot/weekkit/pkg/weekday"
//	)
//
//	w := week.FromDate(time.Date(2021, 1, 20, 0, 0, 0, 0, time.UTC))
//	w.Start()    // 2021-01-18
//	w.String()   // "2021-W03"
//
//	// US-style weeks starting on Sunday:
//	w = week.FromNumber(2021, 1, week.WithFirstWeekday(weekday.Sunday))
//	w.Start()    // 2021-01-03
//
//	// All weeks of a year, lazily:
//	for w := range week.WeeksOfYear(2020) {
//	    fmt.Println(w) // 2020-W01 … 2020-W53
//	}
//
// # Error Handling
//
// Week arithmetic by whole weeks is total. The single failure mode is
// adding or subtracting a time.Duration that is not an exact multiple of
// seven days, which returns ErrNotWholeWeeks; match it with errors.Is.
//
// FromNumber deliberately accepts week numbers outside the 1..52/53 range
// of the target year. Such values produce mathematically consistent weeks
// that simply belong to a neighboring year; see the function documentation.
//
// # Thread Safety
//
// Week is an immutable value type and every function in this package is a
// pure computation, safe for concurrent use without coordination. The only
// external read is the clock used by Now, which is injectable via
// WithClock.
package week
