package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// HouseSize is a house's size tier, determining its room capacity.
type HouseSize int

const (
	HouseSmall HouseSize = iota
	HouseMedium
	HouseLarge
	HouseCustom
)

// roomsPerGrade is the capacity step between size tiers.
const roomsPerGrade = 5

func (s HouseSize) String() string {
	switch s {
	case HouseSmall:
		return "small"
	case HouseMedium:
		return "medium"
	case HouseLarge:
		return "large"
	case HouseCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// MaxRooms returns the room cap for a fixed tier: 5, 10, or 15. Custom
// tiers take their cap from the caller instead.
func (s HouseSize) MaxRooms() int {
	switch s {
	case HouseSmall, HouseMedium, HouseLarge:
		return roomsPerGrade * (int(s) + 1)
	default:
		return -1
	}
}

// Point is a 2D placement coordinate inside a house.
type Point struct {
	X int
	Y int
}

// House is a player-owned structure: a bounded set of rooms plus placement
// coordinates for the things and items positioned inside it. It is a
// metadata record, not an entity, and holds only weak references.
type House struct {
	Owner    Ref
	Size     HouseSize
	maxRooms int
	rooms    []Ref

	// Placements persist where furnishings and items sit on the house's
	// coordinate plane.
	Things map[Ref]Point
	Items  map[Ref]Point
}

// NewHouse creates a house of a fixed size tier. Use NewCustomHouse for a
// caller-defined cap.
func NewHouse(owner Ref, size HouseSize) (*House, error) {
	el := errors.NewErrorList()
	if owner <= Nowhere {
		el.Add(fmt.Errorf("house owner is required"))
	}
	if size < HouseSmall || size > HouseLarge {
		el.Add(fmt.Errorf("house size %d is not a fixed tier", size))
	}
	if err := el.Err(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	return &House{
		Owner:    owner,
		Size:     size,
		maxRooms: size.MaxRooms(),
		Things:   make(map[Ref]Point),
		Items:    make(map[Ref]Point),
	}, nil
}

// NewCustomHouse creates a custom-tier house with a caller-defined room
// cap. A cap below one is rejected: an unbounded house is expressed by an
// explicitly large cap, never by zero or a negative number.
func NewCustomHouse(owner Ref, maxRooms int) (*House, error) {
	el := errors.NewErrorList()
	if owner <= Nowhere {
		el.Add(fmt.Errorf("house owner is required"))
	}
	if maxRooms < 1 {
		el.Add(fmt.Errorf("room cap must be positive, got %d", maxRooms))
	}
	if err := el.Err(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	return &House{
		Owner:    owner,
		Size:     HouseCustom,
		maxRooms: maxRooms,
		Things:   make(map[Ref]Point),
		Items:    make(map[Ref]Point),
	}, nil
}

// MaxRooms returns the effective room cap.
func (h *House) MaxRooms() int {
	return h.maxRooms
}

// Rooms returns a snapshot of the house's room refs.
func (h *House) Rooms() []Ref {
	rooms := make([]Ref, len(h.rooms))
	copy(rooms, h.rooms)
	return rooms
}

// AddRoom appends a room to the house. At the cap the room list is left
// unchanged and an error is returned.
func (h *House) AddRoom(room Ref) error {
	if len(h.rooms) >= h.maxRooms {
		return fmt.Errorf("house is at its %d room cap", h.maxRooms)
	}
	h.rooms = append(h.rooms, room)
	return nil
}

// RemoveRoom drops a room from the house, reporting whether it was there.
func (h *House) RemoveRoom(room Ref) bool {
	for i, r := range h.rooms {
		if r == room {
			h.rooms = append(h.rooms[:i], h.rooms[i+1:]...)
			return true
		}
	}
	return false
}

// PlaceThing pins a thing at a coordinate inside the house.
func (h *House) PlaceThing(thing Ref, at Point) {
	h.Things[thing] = at
}

// PlaceItem pins an item at a coordinate inside the house.
func (h *House) PlaceItem(item Ref, at Point) {
	h.Items[item] = at
}

// Info returns a short human-readable summary, one line per element.
func (h *House) Info() []string {
	return []string{
		"House",
		fmt.Sprintf("Owner: #%d", h.Owner),
		fmt.Sprintf("Size: %s", h.Size),
		fmt.Sprintf("Max Rooms: %d", h.maxRooms),
	}
}
