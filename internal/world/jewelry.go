package world

import (
	"fmt"
	"strconv"
)

// Jewelry is a wearable item carrying a permanent magical effect.
type Jewelry struct {
	Item

	Effect Effect
}

// NewJewelry creates an unregistered piece of jewelry with the given
// effect. The effect is made permanent: jewelry grants its effect for as
// long as it is worn.
func NewJewelry(itemType ItemType, name, description string, effect Effect) (*Jewelry, error) {
	if name == "" {
		return nil, &ValidationError{Err: fmt.Errorf("jewelry name is required")}
	}
	if itemType != ItemJewelry && itemType != ItemRing {
		return nil, &ValidationError{Err: fmt.Errorf("item type %d is not a jewelry type", itemType)}
	}
	effect.Permanent = true

	slot := SlotNeck
	if itemType == ItemRing {
		slot = SlotFinger
	}
	return &Jewelry{
		Item: Item{
			Entity: Entity{
				Name:        name,
				Description: description,
				Flags:       NewFlagSet(FlagItem),
			},
			Equippable: true,
			EquipSlot:  slot,
			Type:       itemType,
		},
		Effect: effect,
	}, nil
}

// Clone copies the jewelry as a fresh, unregistered entity with a zero
// ref. The effect is value-copied, so the clone's effect state is
// independent of the prototype's.
func (j *Jewelry) Clone() *Jewelry {
	dup := *j
	dup.Id = Nowhere
	dup.Flags = NewFlagSet()
	for f := range j.Flags {
		dup.Flags.Set(f)
	}
	return &dup
}

// jewelryArity = base fields + item type + two reserved placeholders.
const jewelryArity = baseArity + 3

// jewelryReserved fills the two placeholder fields in jewelry records.
const jewelryReserved = "*"

func (j *Jewelry) Record() (string, error) {
	fields := append(j.recordFields(),
		strconv.Itoa(int(j.Type)),
		jewelryReserved,
		jewelryReserved,
	)
	return joinRecord(fields)
}

// ParseJewelry decodes a jewelry record. The two reserved fields are
// ignored; the attached effect is not persisted.
func ParseJewelry(record string) (*Jewelry, error) {
	fields, err := splitRecord("jewelry", record, jewelryArity)
	if err != nil {
		return nil, err
	}
	base, err := parseEntityFields("jewelry", fields)
	if err != nil {
		return nil, err
	}
	itemOrd, err := parseOrdinal("jewelry", "item type", fields[5])
	if err != nil {
		return nil, err
	}
	slot := SlotNeck
	if ItemType(itemOrd) == ItemRing {
		slot = SlotFinger
	}
	return &Jewelry{
		Item: Item{
			Entity:     base,
			Equippable: true,
			EquipSlot:  slot,
			Type:       ItemType(itemOrd),
		},
	}, nil
}
