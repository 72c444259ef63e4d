package week

import (
	"time"

	"github.com/dmitrymomot/weekkit/pkg/weekday"
)

// Option configures week construction.
type Option func(*config)

type config struct {
	firstWeekday weekday.Weekday
	now          func() time.Time
}

func defaultConfig() *config {
	return &config{
		firstWeekday: weekday.Monday,
		now:          time.Now,
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFirstWeekday sets the weekday a week is considered to start on.
// Default is Monday (ISO 8601). Invalid values are ignored.
func WithFirstWeekday(d weekday.Weekday) Option {
	return func(c *config) {
		if d.Valid() {
			c.firstWeekday = d
		}
	}
}

// WithClock overrides the clock used by Now. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}
