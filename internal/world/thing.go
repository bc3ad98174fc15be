package world

import (
	"fmt"
	"strconv"
)

// ThingType categorizes a non-item scenery object. Ordinals are part of
// the record format and must not be reordered.
type ThingType int

const (
	ThingMisc ThingType = iota
	ThingFurniture
	ThingContainer
	ThingDecoration
)

var thingNames = [...]string{"misc", "furniture", "container", "decoration"}

func (t ThingType) valid() bool {
	return t >= ThingMisc && t <= ThingDecoration
}

func (t ThingType) String() string {
	return thingNames[t]
}

// Thing is a non-portable scenery entity: furniture, fixtures, and other
// objects positioned inside rooms and houses.
type Thing struct {
	Entity

	Type ThingType
}

// NewThing creates an unregistered thing.
func NewThing(name, description string, thingType ThingType) (*Thing, error) {
	if name == "" {
		return nil, &ValidationError{Err: fmt.Errorf("thing name is required")}
	}
	if !thingType.valid() {
		return nil, &ValidationError{Err: fmt.Errorf("thing type %d out of range", thingType)}
	}
	return &Thing{
		Entity: Entity{
			Name:        name,
			Description: description,
			Flags:       NewFlagSet(),
		},
		Type: thingType,
	}, nil
}

func (t *Thing) Kind() Kind {
	return KindThing
}

// thingArity = base fields + thing type ordinal.
const thingArity = baseArity + 1

func (t *Thing) Record() (string, error) {
	fields := append(t.recordFields(), strconv.Itoa(int(t.Type)))
	return joinRecord(fields)
}

// ParseThing decodes a thing record.
func ParseThing(record string) (*Thing, error) {
	fields, err := splitRecord("thing", record, thingArity)
	if err != nil {
		return nil, err
	}
	base, err := parseEntityFields("thing", fields)
	if err != nil {
		return nil, err
	}
	ord, err := parseOrdinal("thing", "thing type", fields[5])
	if err != nil {
		return nil, err
	}
	if !ThingType(ord).valid() {
		return nil, &FormatError{Kind: "thing", Reason: fmt.Sprintf("thing type ordinal %d out of range", ord)}
	}
	return &Thing{
		Entity: base,
		Type:   ThingType(ord),
	}, nil
}
