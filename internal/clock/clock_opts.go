package clock

import "time"

type Option func(*Clock)

// WithStartDate sets the calendar date the clock begins at. Month and day
// are 0-indexed into the days-per-month table.
func WithStartDate(year, month, day int) Option {
	return func(c *Clock) {
		c.year = year
		c.month = month
		c.day = day
	}
}

// WithStartTime sets the time of day the clock begins at.
func WithStartTime(hour, minute int) Option {
	return func(c *Clock) {
		c.hour = hour
		c.minute = minute
	}
}

// WithTickInterval sets how many real milliseconds one game second takes.
func WithTickInterval(d time.Duration) Option {
	return func(c *Clock) {
		c.msPerSecond = d
	}
}

// WithMinuteInterval sets how many real milliseconds one game minute takes.
func WithMinuteInterval(d time.Duration) Option {
	return func(c *Clock) {
		c.msPerMinute = d
	}
}

// WithMoonPhase sets the starting moon phase.
func WithMoonPhase(p MoonPhase) Option {
	return func(c *Clock) {
		c.moonPhase = p
	}
}
