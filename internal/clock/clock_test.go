package clock

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"

	"github.com/jnharton/mudcore/internal/chat"
)

// recorder captures hook invocations and sink traffic in arrival order so
// tests can assert on the exact cascade.
type recorder struct {
	events   []string
	messages []chat.Message
}

func (r *recorder) CheckTimers()     { r.events = append(r.events, "timers") }
func (r *recorder) HandleMovement()  { r.events = append(r.events, "movement") }
func (r *recorder) OnHourIncrement() { r.events = append(r.events, "hour") }
func (r *recorder) OnDayIncrement()  { r.events = append(r.events, "day") }

func (r *recorder) AddMessage(m chat.Message) {
	r.messages = append(r.messages, m)
	r.events = append(r.events, "announce:"+m.Text)
}

func (r *recorder) Debug(s string) {
	r.events = append(r.events, "debug:"+s)
}

// thirtyDayYear is a simple four-month test calendar.
var thirtyDayYear = []int{30, 30, 30, 30}

func newTestClock(t *testing.T, rec *recorder, opts ...Option) *Clock {
	t.Helper()
	c, err := NewClock(rec, rec, thirtyDayYear, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestClock_TickAdvancesSecond(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec)

	c.Tick()

	testutil.AssertEqual(t, "second", c.Second(), 1)
	testutil.AssertEqual(t, "minute", c.Minute(), 0)
	if !reflect.DeepEqual(rec.events, []string{"timers"}) {
		t.Errorf("unexpected events: %v", rec.events)
	}
}

func TestClock_MinuteRollover(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec)
	c.SetSecond(59)

	c.Tick()

	testutil.AssertEqual(t, "second", c.Second(), 0)
	testutil.AssertEqual(t, "minute", c.Minute(), 1)

	want := []string{"debug:time loop: 00:01", "movement", "timers"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestClock_HourRolloverFiresDawn(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec, WithStartTime(5, 59))
	c.SetSecond(59)

	c.Tick()

	testutil.AssertEqual(t, "hour", c.Hour(), 6)
	testutil.AssertEqual(t, "minute", c.Minute(), 0)
	testutil.AssertEqual(t, "time of day", c.TimeOfDay(), Dawn)
	testutil.AssertEqual(t, "daytime", c.IsDaytime(), true)
	testutil.AssertEqual(t, "celestial body", c.CelestialBody(), "sun")

	want := []string{
		"hour",
		"announce:It is now dawn.",
		"debug:It is now dawn.",
		"debug:time loop: 06:00",
		"movement",
		"timers",
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestClock_TransitionMatchesLandingHour(t *testing.T) {
	// Rolling 06:59:59 into 07:00 announces morning, not a replay of dawn.
	rec := &recorder{}
	c := newTestClock(t, rec, WithStartTime(6, 59))
	c.SetSecond(59)

	c.Tick()

	testutil.AssertEqual(t, "time of day", c.TimeOfDay(), Morning)
	testutil.AssertEqual(t, "announcements", len(rec.messages), 1)
	testutil.AssertEqual(t, "text", rec.messages[0].Text, "It is now morning.")
}

func TestClock_BeforeDawnAnnouncedOnce(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec, WithStartTime(4, 59))
	c.SetSecond(59)

	c.Tick()

	testutil.AssertEqual(t, "time of day", c.TimeOfDay(), BeforeDawn)
	testutil.AssertEqual(t, "announcements", len(rec.messages), 1)
	testutil.AssertEqual(t, "text", rec.messages[0].Text, "It is now just before dawn.")
}

func TestClock_UnnamedHourIsSilent(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec, WithStartTime(8, 59))
	c.SetSecond(59)

	c.Tick()

	testutil.AssertEqual(t, "hour", c.Hour(), 9)
	testutil.AssertEqual(t, "announcements", len(rec.messages), 0)
}

func TestClock_NightRestoresMoon(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec, WithStartTime(5, 59))
	c.SetSecond(59)
	c.Tick() // dawn: sun up

	c.SetHour(18)
	c.SetMinute(59)
	c.SetSecond(59)
	c.Tick()

	testutil.AssertEqual(t, "time of day", c.TimeOfDay(), Night)
	testutil.AssertEqual(t, "daytime", c.IsDaytime(), false)
	testutil.AssertEqual(t, "celestial body", c.CelestialBody(), "moon")
}

func TestClock_YearRollover(t *testing.T) {
	calendar := []int{2, 3}
	rec := &recorder{}
	c, err := NewClock(rec, rec, calendar,
		WithStartDate(10, 1, 2),
		WithStartTime(23, 59),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.SetSecond(59)

	c.Tick()

	testutil.AssertEqual(t, "second", c.Second(), 0)
	testutil.AssertEqual(t, "minute", c.Minute(), 0)
	testutil.AssertEqual(t, "hour", c.Hour(), 0)
	testutil.AssertEqual(t, "day", c.Day(), 0)
	testutil.AssertEqual(t, "month", c.Month(), 0)
	testutil.AssertEqual(t, "year", c.Year(), 11)
	testutil.AssertEqual(t, "time of day", c.TimeOfDay(), Midnight)

	want := []string{
		"day",
		"hour",
		"announce:It is now midnight.",
		"debug:It is now midnight.",
		"debug:time loop: 00:00",
		"movement",
		"timers",
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}

func TestClock_MidMonthDayRollover(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec, WithStartDate(5, 2, 10), WithStartTime(23, 59))
	c.SetSecond(59)

	c.Tick()

	testutil.AssertEqual(t, "day", c.Day(), 11)
	testutil.AssertEqual(t, "month", c.Month(), 2)
	testutil.AssertEqual(t, "year", c.Year(), 5)
}

func TestClock_SetHourResetsMinute(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec, WithStartTime(10, 42))

	c.SetHour(15)

	testutil.AssertEqual(t, "hour", c.Hour(), 15)
	testutil.AssertEqual(t, "minute", c.Minute(), 0)
}

func TestClock_PauseSkipsTickBodies(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec)

	testutil.AssertEqual(t, "initially running", c.Paused(), false)
	c.Pause()
	testutil.AssertEqual(t, "paused", c.Paused(), true)
	c.Unpause()
	testutil.AssertEqual(t, "resumed", c.Paused(), false)
}

func TestClock_Scale(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec)

	testutil.AssertEqual(t, "default", c.Scale(), DefaultMsPerMinute)
	c.SetScale(2 * time.Second)
	testutil.AssertEqual(t, "updated", c.Scale(), 2*time.Second)
}

func TestClock_MoonPhaseOption(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec, WithMoonPhase(WaningGibbous))

	testutil.AssertEqual(t, "phase", c.MoonPhase(), WaningGibbous)
	testutil.AssertEqual(t, "name", c.MoonPhase().String(), "waning gibbous")
}

func TestClock_StopEndsLoop(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec, WithTickInterval(time.Millisecond))

	done := make(chan error, 1)
	go func() {
		done <- c.Start(context.Background())
	}()

	c.Stop()
	c.Stop() // safe to repeat

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("clock did not stop")
	}
}

func TestClock_ContextCancelEndsLoop(t *testing.T) {
	rec := &recorder{}
	c := newTestClock(t, rec, WithTickInterval(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("clock did not stop")
	}
}

func TestNewClock_Validation(t *testing.T) {
	rec := &recorder{}

	tests := []struct {
		name    string
		build   func() (*Clock, error)
		errText string
	}{
		{
			"nil hooks",
			func() (*Clock, error) { return NewClock(nil, rec, thirtyDayYear) },
			"hooks are required",
		},
		{
			"nil sink",
			func() (*Clock, error) { return NewClock(rec, nil, thirtyDayYear) },
			"message sink is required",
		},
		{
			"empty calendar",
			func() (*Clock, error) { return NewClock(rec, rec, nil) },
			"days per month table is required",
		},
		{
			"zero-day month",
			func() (*Clock, error) { return NewClock(rec, rec, []int{30, 0}) },
			"days must be positive",
		},
		{
			"start time out of range",
			func() (*Clock, error) { return NewClock(rec, rec, thirtyDayYear, WithStartTime(24, 0)) },
			"out of range",
		},
		{
			"start day past month end",
			func() (*Clock, error) {
				return NewClock(rec, rec, thirtyDayYear, WithStartDate(1, 0, 30))
			},
			"out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			testutil.AssertErrorContains(t, err, tt.errText)
		})
	}
}
