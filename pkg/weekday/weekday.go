package weekday

import (
	"strconv"
	"time"
)

// Weekday is an ISO-8601 day of the week: Monday is 1, Sunday is 7.
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var names = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// FromOrdinal converts an ISO ordinal (1..7) into a Weekday.
// Returns ErrInvalidOrdinal for any other value.
func FromOrdinal(n int) (Weekday, error) {
	d := Weekday(n)
	if !d.Valid() {
		return 0, ErrInvalidOrdinal
	}
	return d, nil
}

// FromDate returns the ISO weekday of a calendar date.
// time.Time counts Sunday as 0; ISO counts it as 7.
func FromDate(t time.Time) Weekday {
	if wd := t.Weekday(); wd != time.Sunday {
		return Weekday(wd)
	}
	return Sunday
}

// Valid reports whether d is inside the closed set 1..7.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the English day name, or "Weekday(n)" for out-of-range values.
func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return names[d-1]
}

// Add returns the weekday n positions later, wrapping modulo 7.
// Total over all integers: a negative n rotates backwards and the result is
// always a valid Weekday.
//
//	weekday.Sunday.Add(1)  // Monday
//	weekday.Monday.Add(-3) // Friday
func (d Weekday) Add(n int) Weekday {
	r := (int(d) - 1 + n) % 7
	if r < 0 {
		r += 7
	}
	return Weekday(r + 1)
}

// Sub returns the weekday n positions earlier. Equivalent to Add(-n).
func (d Weekday) Sub(n int) Weekday {
	return d.Add(-n)
}

// DaysSince returns the minimal non-negative number of days that must be
// added to o to reach d, always in [0, 6].
//
//	weekday.Thursday.DaysSince(weekday.Tuesday) // 2
//	weekday.Tuesday.DaysSince(weekday.Thursday) // 5
func (d Weekday) DaysSince(o Weekday) int {
	r := (int(d) - int(o)) % 7
	if r < 0 {
		r += 7
	}
	return r
}

// FirstOfYear returns the first calendar date in year whose weekday is d,
// at midnight UTC. The result always falls on January 1 through 7.
//
//	weekday.Thursday.FirstOfYear(2004) // 2004-01-01
//	weekday.Thursday.FirstOfYear(2010) // 2010-01-07
func (d Weekday) FirstOfYear(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	day := 1 + d.DaysSince(FromDate(jan1))
	return time.Date(year, time.January, day, 0, 0, 0, 0, time.UTC)
}
