package world

// Effect is a magical effect attached to an item or applied to a player.
// It is a value type: copying an item copies its effect, so two clones of
// the same prototype never share effect state.
type Effect struct {
	Name string

	// Permanent effects never expire; Duration is ignored for them.
	Permanent bool

	// Duration is the remaining lifetime in game seconds.
	Duration int
}
