// Package weekkit is a small kit for calendar-week arithmetic.
//
// WeekKit models weeks the way schedulers, reports and billing periods need
// them: a week is a run of seven consecutive dates starting on a configurable
// first weekday, with ISO-8601 style numbering generalized to any such
// convention. It is a pure computation library: no I/O, no persistence, no
// timezone handling, and every operation is a deterministic function over
// immutable values.
//
// The kit is split into focused packages under pkg/:
//
//   - pkg/weekday: the ISO weekday enumeration (Monday=1 … Sunday=7) with
//     cyclic arithmetic and year-placement lookups.
//   - pkg/week: the Week value type, construction from dates or week
//     numbers, midpoint-anchored year/number assignment, containment,
//     iteration and whole-week arithmetic, plus WeeksOfYear.
//
// Basic Usage:
//
//	w := week.FromDate(time.Now())
//	fmt.Println(w)                  // e.g. "2026-W35"
//	fmt.Println(w.Start(), w.End()) // the week's half-open date window
//
//	for wk := range week.WeeksOfYear(2026) {
//	    // 52 or 53 weeks, depending on the year
//	}
//
// See the package documentation of pkg/week and pkg/weekday for details.
package weekkit
