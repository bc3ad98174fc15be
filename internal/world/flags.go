package world

import "sort"

// Flag is a single capability/category tag on an entity, encoded as one
// uppercase letter in the record format.
type Flag rune

const (
	FlagBanned Flag = 'B'
	FlagDark   Flag = 'D'
	FlagItem   Flag = 'I'
	FlagSilent Flag = 'S'
	FlagWizard Flag = 'W'
)

// FlagSet is an order-insensitive set of flags.
type FlagSet map[Flag]struct{}

func NewFlagSet(flags ...Flag) FlagSet {
	fs := FlagSet{}
	for _, f := range flags {
		fs[f] = struct{}{}
	}
	return fs
}

// ParseFlags decodes the record representation of a flag set. Unknown
// letters are kept as-is so older databases keep loading.
func ParseFlags(s string) FlagSet {
	fs := FlagSet{}
	for _, r := range s {
		fs[Flag(r)] = struct{}{}
	}
	return fs
}

func (fs FlagSet) Has(f Flag) bool {
	_, ok := fs[f]
	return ok
}

func (fs FlagSet) Set(f Flag) {
	fs[f] = struct{}{}
}

func (fs FlagSet) Clear(f Flag) {
	delete(fs, f)
}

// String encodes the set as its record representation: the member letters
// in sorted order, empty string for the empty set.
func (fs FlagSet) String() string {
	letters := make([]rune, 0, len(fs))
	for f := range fs {
		letters = append(letters, rune(f))
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

// Equal reports whether two sets hold the same flags.
func (fs FlagSet) Equal(other FlagSet) bool {
	if len(fs) != len(other) {
		return false
	}
	for f := range fs {
		if !other.Has(f) {
			return false
		}
	}
	return true
}
