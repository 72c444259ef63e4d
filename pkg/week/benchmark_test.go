package week_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/weekkit/pkg/week"
	"github.com/dmitrymomot/weekkit/pkg/weekday"
)

func BenchmarkFromDate(b *testing.B) {
	d := time.Date(2021, 9, 30, 0, 0, 0, 0, time.UTC)

	b.ReportAllocs()
	for b.Loop() {
		_ = week.FromDate(d)
	}
}

func BenchmarkFromNumber(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = week.FromNumber(2021, 30, week.WithFirstWeekday(weekday.Sunday))
	}
}

func BenchmarkNumber(b *testing.B) {
	w := week.New(time.Date(2021, 10, 4, 0, 0, 0, 0, time.UTC))

	b.ReportAllocs()
	for b.Loop() {
		_ = w.Number()
	}
}

func BenchmarkString(b *testing.B) {
	w := week.New(time.Date(2021, 1, 18, 0, 0, 0, 0, time.UTC))

	b.ReportAllocs()
	for b.Loop() {
		_ = w.String()
	}
}

func BenchmarkWeeksOfYear(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		count := 0
		for range week.WeeksOfYear(2020) {
			count++
		}
		if count != 53 {
			b.Fatalf("unexpected week count %d", count)
		}
	}
}
