package clock

// TimeOfDay is the named period of the game day.
type TimeOfDay int

const (
	Midnight TimeOfDay = iota
	BeforeDawn
	Dawn
	Morning
	Midday
	Afternoon
	Dusk
	Night
)

var timeOfDayNames = [...]string{
	"midnight", "before dawn", "dawn", "morning",
	"midday", "afternoon", "dusk", "night",
}

var timeOfDayAnnouncements = [...]string{
	"It is now midnight.",
	"It is now just before dawn.",
	"It is now dawn.",
	"It is now morning.",
	"It is now midday.",
	"It is now afternoon.",
	"It is now dusk.",
	"It is now night.",
}

func (t TimeOfDay) String() string {
	return timeOfDayNames[t]
}

// Announcement is the one-line message published when this period begins.
func (t TimeOfDay) Announcement() string {
	return timeOfDayAnnouncements[t]
}

// hourTransitions maps the hour at which each period begins. It is only
// consulted when an hour rollover lands on minute 0.
var hourTransitions = map[int]TimeOfDay{
	0:  Midnight,
	5:  BeforeDawn,
	6:  Dawn,
	7:  Morning,
	12: Midday,
	13: Afternoon,
	18: Dusk,
	19: Night,
}

// MoonPhase is the current phase of the game world's moon.
type MoonPhase int

const (
	NewMoon MoonPhase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var moonPhaseNames = [...]string{
	"new moon", "waxing crescent", "first quarter", "waxing gibbous",
	"full moon", "waning gibbous", "last quarter", "waning crescent",
}

func (p MoonPhase) String() string {
	return moonPhaseNames[p]
}
