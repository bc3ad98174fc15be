package world

import (
	"fmt"
	"strings"
)

// ItemType categorizes an item. Ordinals are part of the record format and
// must not be reordered.
type ItemType int

const (
	ItemNone ItemType = iota
	ItemArmor
	ItemClothing
	ItemJewelry
	ItemRing
	ItemWeapon
)

// EquipSlot is the body slot an equippable item occupies.
type EquipSlot int

const (
	SlotNone EquipSlot = iota
	SlotHead
	SlotBody
	SlotHands
	SlotFinger
	SlotNeck
	SlotLegs
	SlotFeet
)

// Coins is a monetary value in copper pieces.
type Coins int

func (c Coins) String() string {
	return fmt.Sprintf("%d cp", int(c))
}

// Item holds the properties shared by every item variant.
type Item struct {
	Entity

	Weight     float64
	Equippable bool
	EquipSlot  EquipSlot
	Type       ItemType
}

func (i *Item) Kind() Kind {
	return KindItem
}

// itemArity is the minimum item record length: base fields + item type.
const itemArity = baseArity + 1

// ParseItem decodes an item record, dispatching on the item type ordinal to
// the concrete variant parser.
func ParseItem(record string) (Object, error) {
	fields := strings.Split(record, recordSep)
	if len(fields) < itemArity {
		return nil, &FormatError{
			Kind:   "item",
			Reason: fmt.Sprintf("expected at least %d fields, got %d", itemArity, len(fields)),
		}
	}
	ord, err := parseOrdinal("item", "item type", fields[5])
	if err != nil {
		return nil, err
	}
	switch ItemType(ord) {
	case ItemArmor:
		return ParseArmor(record)
	case ItemClothing:
		return ParseClothing(record)
	case ItemJewelry, ItemRing:
		return ParseJewelry(record)
	default:
		return nil, &FormatError{Kind: "item", Reason: fmt.Sprintf("item type ordinal %d out of range", ord)}
	}
}
