// Package weekday provides the ISO-8601 weekday enumeration with cyclic
// arithmetic and year-placement lookups.
//
// A Weekday is an ordinal in the closed set 1..7 where 1 is Monday and 7 is
// Sunday, matching ISO 8601. All arithmetic wraps modulo 7 and always yields
// a value inside the set, for any integer operand including negative ones.
//
// # Usage
//
//	import "github.com/dmitrymomot/weekkit/pkg/weekday"
//
//	d := weekday.Friday.Add(3)            // Monday
//	n := weekday.Thursday.DaysSince(weekday.Tuesday) // 2
//
//	// First Thursday of 2021 (2021-01-07):
//	t := weekday.Thursday.FirstOfYear(2021)
//
// # Error Handling
//
// Every operation on a valid Weekday is total and cannot fail. The only
// fallible entry point is FromOrdinal, which returns ErrInvalidOrdinal for
// values outside 1..7; match it with errors.Is.
package weekday
