package clock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/jnharton/mudcore/internal/chat"
)

// Hooks are the server callbacks driven by the clock. They run
// synchronously on the tick goroutine and must not block indefinitely, or
// the whole world clock stalls.
type Hooks interface {
	// CheckTimers runs every tick.
	CheckTimers()

	// HandleMovement runs on every minute rollover.
	HandleMovement()

	// OnHourIncrement runs on every hour rollover.
	OnHourIncrement()

	// OnDayIncrement runs on every day rollover.
	OnDayIncrement()
}

// MessageSink receives the clock's announcements and debug traces.
type MessageSink interface {
	AddMessage(chat.Message)
	Debug(string)
}

// Clock advances the game calendar on a fixed real-time tick and fires
// hooks at calendar boundaries. One clock runs per server process; its
// calendar fields are mutated only by its own tick, while hooks and
// command handlers read them through the getters.
type Clock struct {
	mu sync.RWMutex

	second int
	minute int
	hour   int
	day    int
	month  int
	year   int

	timeOfDay     TimeOfDay
	moonPhase     MoonPhase
	celestialBody string
	isDay         bool

	paused bool

	msPerSecond time.Duration
	msPerMinute time.Duration

	// daysPerMonth is the caller-supplied calendar: entry i is the number
	// of days in month i.
	daysPerMonth []int

	hooks Hooks
	sink  MessageSink

	stopOnce sync.Once
	stopped  chan struct{}
}

const (
	// DefaultMsPerSecond yields the 6:1 timescale: six game minutes pass
	// per real minute.
	DefaultMsPerSecond = 166 * time.Millisecond
	DefaultMsPerMinute = 10 * time.Second
)

// NewClock creates a clock with the given calendar. The clock does not
// advance until Start runs its loop.
func NewClock(hooks Hooks, sink MessageSink, daysPerMonth []int, opts ...Option) (*Clock, error) {
	c := &Clock{
		timeOfDay:     Midnight,
		moonPhase:     FullMoon,
		celestialBody: "moon",
		msPerSecond:   DefaultMsPerSecond,
		msPerMinute:   DefaultMsPerMinute,
		daysPerMonth:  daysPerMonth,
		hooks:         hooks,
		sink:          sink,
		stopped:       make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	el := errors.NewErrorList()
	if hooks == nil {
		el.Add(fmt.Errorf("hooks are required"))
	}
	if sink == nil {
		el.Add(fmt.Errorf("message sink is required"))
	}
	if len(daysPerMonth) == 0 {
		el.Add(fmt.Errorf("days per month table is required"))
	}
	for i, days := range daysPerMonth {
		if days < 1 {
			el.Add(fmt.Errorf("month %d: days must be positive, got %d", i, days))
		}
	}
	if c.msPerSecond <= 0 {
		el.Add(fmt.Errorf("tick interval must be positive"))
	}
	if c.second < 0 || c.second > 59 || c.minute < 0 || c.minute > 59 || c.hour < 0 || c.hour > 23 {
		el.Add(fmt.Errorf("start time %02d:%02d:%02d out of range", c.hour, c.minute, c.second))
	}
	if c.month < 0 || c.month >= len(daysPerMonth) {
		el.Add(fmt.Errorf("start month %d out of range", c.month))
	} else if c.day < 0 || c.day >= daysPerMonth[c.month] {
		el.Add(fmt.Errorf("start day %d out of range for month %d", c.day, c.month))
	}
	if err := el.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// Start runs the tick loop until Stop is called or the context is
// cancelled. Pausing skips the tick body but keeps the heartbeat alive, so
// an unpaused clock resumes arithmetic exactly where it left off.
func (c *Clock) Start(ctx context.Context) error {
	ticker := time.NewTicker(c.msPerSecond)
	defer ticker.Stop()

	slog.InfoContext(ctx, "world clock running", "tick", c.msPerSecond.String())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-c.stopped:
			slog.InfoContext(ctx, "world clock stopped")
			return nil
		case <-ticker.C:
			if c.Paused() {
				continue
			}
			c.Tick()
		}
	}
}

// Tick advances the calendar by one game second, cascading rollovers and
// firing hooks. The cascade is strictly causal: a later-stage hook never
// runs before the earlier-stage rollover it depends on has committed.
func (c *Clock) Tick() {
	// Calendar mutation happens under the lock; hooks run after it is
	// released, in cascade order, so they can read the committed state
	// through the getters without deadlocking.
	var calls []func()
	c.mu.Lock()
	c.incrementSecond(&calls)
	c.mu.Unlock()

	for _, call := range calls {
		call()
	}
}

func (c *Clock) incrementSecond(calls *[]func()) {
	c.second++
	if c.second > 59 {
		c.second = 0
		c.incrementMinute(calls)
	}
	*calls = append(*calls, c.hooks.CheckTimers)
}

func (c *Clock) incrementMinute(calls *[]func()) {
	c.minute++
	if c.minute > 59 {
		c.minute = 0
		c.incrementHour(calls)
	}

	trace := fmt.Sprintf("time loop: %02d:%02d", c.hour, c.minute)
	*calls = append(*calls,
		func() { c.sink.Debug(trace) },
		c.hooks.HandleMovement,
	)
}

func (c *Clock) incrementHour(calls *[]func()) {
	c.hour++
	if c.hour > 23 {
		c.hour = 0
		c.incrementDay(calls)
	}
	*calls = append(*calls, c.hooks.OnHourIncrement)

	// Named transitions only fire when the rollover lands on minute 0; a
	// mid-hour SetMinute must not replay a period already announced.
	if c.minute != 0 {
		return
	}
	tod, ok := hourTransitions[c.hour]
	if !ok {
		return
	}

	c.timeOfDay = tod
	switch tod {
	case Dawn:
		c.celestialBody = "sun"
		c.isDay = true
	case Night:
		c.celestialBody = "moon"
		c.isDay = false
	}

	text := tod.Announcement()
	*calls = append(*calls, func() {
		c.sink.AddMessage(chat.NewSystemMessage(text))
		c.sink.Debug(text)
	})
}

func (c *Clock) incrementDay(calls *[]func()) {
	c.day++
	if c.day >= c.daysPerMonth[c.month] {
		c.day = 0
		c.incrementMonth()
	}
	*calls = append(*calls, c.hooks.OnDayIncrement)
}

func (c *Clock) incrementMonth() {
	c.month++
	if c.month >= len(c.daysPerMonth) {
		c.month = 0
		c.year++
	}
}

// Pause skips tick bodies without suspending the heartbeat.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Unpause resumes tick bodies.
func (c *Clock) Unpause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
}

func (c *Clock) Paused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// Stop terminates the tick loop permanently. There is no restart; it is
// safe to call more than once.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() { close(c.stopped) })
}

// SetHour sets the hour and resets the minute to 0. The reset keeps the
// named-transition table honest after an admin time jump.
func (c *Clock) SetHour(hour int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hour = hour
	c.minute = 0
}

func (c *Clock) SetMinute(minute int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minute = minute
}

func (c *Clock) SetSecond(second int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.second = second
}

// SetScale changes how many real milliseconds one game minute takes.
func (c *Clock) SetScale(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msPerMinute = d
}

func (c *Clock) Scale() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.msPerMinute
}

func (c *Clock) Second() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.second
}

func (c *Clock) Minute() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.minute
}

func (c *Clock) Hour() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hour
}

func (c *Clock) Day() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.day
}

func (c *Clock) Month() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.month
}

func (c *Clock) Year() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.year
}

func (c *Clock) TimeOfDay() TimeOfDay {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeOfDay
}

func (c *Clock) MoonPhase() MoonPhase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.moonPhase
}

func (c *Clock) CelestialBody() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.celestialBody
}

func (c *Clock) IsDaytime() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isDay
}
