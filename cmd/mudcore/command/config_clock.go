package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/jnharton/mudcore/internal/clock"
)

type ClockConfig struct {
	// TickInterval is the real time one game second takes, e.g. "166ms".
	TickInterval string `json:"tick_interval"`

	StartYear   int `json:"start_year"`
	StartMonth  int `json:"start_month"`
	StartDay    int `json:"start_day"`
	StartHour   int `json:"start_hour"`
	StartMinute int `json:"start_minute"`

	// DaysPerMonth defines the game calendar, one entry per month.
	DaysPerMonth []int `json:"days_per_month"`
}

func (c *ClockConfig) validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("tick_interval must be positive"))
		}
	}

	if len(c.DaysPerMonth) == 0 {
		el.Add(fmt.Errorf("days_per_month is required"))
	}
	for i, days := range c.DaysPerMonth {
		if days < 1 {
			el.Add(fmt.Errorf("days_per_month[%d] must be positive", i))
		}
	}

	if c.StartHour < 0 || c.StartHour > 23 {
		el.Add(fmt.Errorf("start_hour must be between 0 and 23"))
	}
	if c.StartMinute < 0 || c.StartMinute > 59 {
		el.Add(fmt.Errorf("start_minute must be between 0 and 59"))
	}

	return el.Err()
}

func (c *ClockConfig) BuildClock(hooks clock.Hooks, sink clock.MessageSink) (*clock.Clock, error) {
	opts := []clock.Option{
		clock.WithStartDate(c.StartYear, c.StartMonth, c.StartDay),
		clock.WithStartTime(c.StartHour, c.StartMinute),
	}
	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		opts = append(opts, clock.WithTickInterval(d))
	}

	return clock.NewClock(hooks, sink, c.DaysPerMonth, opts...)
}
