package week

import "iter"

// WeeksOfYear returns the ordered sequence of every week belonging to the
// given year under the configured first-weekday convention. The sequence is
// lazy, starts at week 1 and stops as soon as a week's Year exceeds year,
// yielding 52 or 53 weeks depending on where the year's weekday boundaries
// fall. Consumers must not assume a fixed count.
//
//	for w := range week.WeeksOfYear(2020) {
//	    fmt.Println(w) // 2020-W01 through 2020-W53
//	}
func WeeksOfYear(year int, opts ...Option) iter.Seq[Week] {
	cfg := applyOptions(opts)
	return func(yield func(Week) bool) {
		for w := fromNumber(year, 1, cfg.firstWeekday); w.Year() <= year; w = w.Add(1) {
			if !yield(w) {
				return
			}
		}
	}
}
