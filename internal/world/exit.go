package world

import (
	"fmt"
	"strconv"
)

// ExitType categorizes an exit. Ordinals are part of the record format and
// must not be reordered.
type ExitType int

const (
	ExitDoor ExitType = iota
	ExitPortal
	ExitStandard
)

func (t ExitType) String() string {
	switch t {
	case ExitDoor:
		return "door"
	case ExitPortal:
		return "portal"
	case ExitStandard:
		return "standard"
	default:
		return "unknown"
	}
}

// Lockable is the capability exposed by entities that can be locked, such
// as doors and (eventually) containers.
type Lockable interface {
	Lock()
	Unlock()
	IsLocked() bool
}

// Exit connects a room to a destination room.
type Exit struct {
	Entity

	Destination Ref
	Type        ExitType

	locked bool

	// Traversal message templates, expanded with a TraversalContext.
	SuccMsg  string // shown to the mover on success
	OSuccMsg string // shown to others on success
	FailMsg  string // shown to the mover on failure
	OFailMsg string // shown to others on failure

	// Aliases are alternate names players can use to target this exit.
	// They are not persisted in the record.
	Aliases []string
}

// NewExit creates an unregistered exit from location to destination.
func NewExit(name string, location, destination Ref, exitType ExitType) (*Exit, error) {
	if name == "" {
		return nil, &ValidationError{Err: fmt.Errorf("exit name is required")}
	}
	return &Exit{
		Entity: Entity{
			Name:        name,
			Description: "You see nothing.",
			Location:    location,
			Flags:       NewFlagSet(),
		},
		Destination: destination,
		Type:        exitType,
	}, nil
}

func (e *Exit) Kind() Kind {
	return KindExit
}

// Lock engages the lock. Only doors can be locked; for any other exit type
// this is a no-op.
func (e *Exit) Lock() {
	if e.Type == ExitDoor {
		e.locked = true
	}
}

func (e *Exit) Unlock() {
	if e.Type == ExitDoor {
		e.locked = false
	}
}

func (e *Exit) IsLocked() bool {
	return e.locked
}

// exitArity = base fields + destination + exit type ordinal.
const exitArity = baseArity + 2

func (e *Exit) Record() (string, error) {
	fields := append(e.recordFields(),
		strconv.Itoa(int(e.Destination)),
		strconv.Itoa(int(e.Type)),
	)
	return joinRecord(fields)
}

// ParseExit decodes an exit record.
func ParseExit(record string) (*Exit, error) {
	fields, err := splitRecord("exit", record, exitArity)
	if err != nil {
		return nil, err
	}
	base, err := parseEntityFields("exit", fields)
	if err != nil {
		return nil, err
	}
	dest, err := parseRef("exit", "destination", fields[5])
	if err != nil {
		return nil, err
	}
	ord, err := parseOrdinal("exit", "exit type", fields[6])
	if err != nil {
		return nil, err
	}
	if ord < int(ExitDoor) || ord > int(ExitStandard) {
		return nil, &FormatError{Kind: "exit", Reason: fmt.Sprintf("exit type ordinal %d out of range", ord)}
	}
	return &Exit{
		Entity:      base,
		Destination: dest,
		Type:        ExitType(ord),
	}, nil
}
