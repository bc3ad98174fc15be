package world

import "fmt"

// Room is a location entity. Its exits are separate Exit entities whose
// Location field points back at the room, so the exit list is derived by
// the store rather than persisted here.
type Room struct {
	Entity

	// Zone is a free-form grouping tag for area resets and building tools.
	Zone string
}

// NewRoom creates an unregistered room.
func NewRoom(name, description, zone string) (*Room, error) {
	if name == "" {
		return nil, &ValidationError{Err: fmt.Errorf("room name is required")}
	}
	return &Room{
		Entity: Entity{
			Name:        name,
			Description: description,
			Flags:       NewFlagSet(),
		},
		Zone: zone,
	}, nil
}

func (r *Room) Kind() Kind {
	return KindRoom
}

// roomArity = base fields + zone tag.
const roomArity = baseArity + 1

func (r *Room) Record() (string, error) {
	fields := append(r.recordFields(), r.Zone)
	return joinRecord(fields)
}

// ParseRoom decodes a room record.
func ParseRoom(record string) (*Room, error) {
	fields, err := splitRecord("room", record, roomArity)
	if err != nil {
		return nil, err
	}
	base, err := parseEntityFields("room", fields)
	if err != nil {
		return nil, err
	}
	return &Room{
		Entity: base,
		Zone:   fields[5],
	}, nil
}
