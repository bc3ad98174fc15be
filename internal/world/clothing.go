package world

import (
	"fmt"
	"strconv"
)

// ClothingType identifies a category of clothing. Ordinals are part of the
// record format and must not be reordered.
type ClothingType int

const (
	ClothingShirt ClothingType = iota
	ClothingPants
	ClothingCloak
	ClothingBoots
	ClothingGloves
	ClothingHat
)

var clothingNames = [...]string{"shirt", "pants", "cloak", "boots", "gloves", "hat"}

func (t ClothingType) valid() bool {
	return t >= ClothingShirt && t <= ClothingHat
}

func (t ClothingType) String() string {
	return clothingNames[t]
}

func (t ClothingType) slot() EquipSlot {
	switch t {
	case ClothingHat:
		return SlotHead
	case ClothingPants:
		return SlotLegs
	case ClothingBoots:
		return SlotFeet
	case ClothingGloves:
		return SlotHands
	default:
		return SlotBody
	}
}

// Clothing is a wearable item with no combat properties.
type Clothing struct {
	Item

	ClothingType ClothingType
}

// NewClothing creates an unregistered piece of clothing.
func NewClothing(name string, clothingType ClothingType, weight float64) (*Clothing, error) {
	if name == "" {
		return nil, &ValidationError{Err: fmt.Errorf("clothing name is required")}
	}
	if !clothingType.valid() {
		return nil, &ValidationError{Err: fmt.Errorf("clothing type %d out of range", clothingType)}
	}
	return &Clothing{
		Item: Item{
			Entity: Entity{
				Name:  name,
				Flags: NewFlagSet(FlagItem),
			},
			Weight:     weight,
			Equippable: true,
			EquipSlot:  clothingType.slot(),
			Type:       ItemClothing,
		},
		ClothingType: clothingType,
	}, nil
}

// clothingArity = base fields + item type + clothing type.
const clothingArity = baseArity + 2

func (c *Clothing) Record() (string, error) {
	fields := append(c.recordFields(),
		strconv.Itoa(int(c.Type)),
		strconv.Itoa(int(c.ClothingType)),
	)
	return joinRecord(fields)
}

// ParseClothing decodes a clothing record.
func ParseClothing(record string) (*Clothing, error) {
	fields, err := splitRecord("clothing", record, clothingArity)
	if err != nil {
		return nil, err
	}
	base, err := parseEntityFields("clothing", fields)
	if err != nil {
		return nil, err
	}
	itemOrd, err := parseOrdinal("clothing", "item type", fields[5])
	if err != nil {
		return nil, err
	}
	clothOrd, err := parseOrdinal("clothing", "clothing type", fields[6])
	if err != nil {
		return nil, err
	}
	if !ClothingType(clothOrd).valid() {
		return nil, &FormatError{Kind: "clothing", Reason: fmt.Sprintf("clothing type ordinal %d out of range", clothOrd)}
	}
	clothingType := ClothingType(clothOrd)
	return &Clothing{
		Item: Item{
			Entity:     base,
			Equippable: true,
			EquipSlot:  clothingType.slot(),
			Type:       ItemType(itemOrd),
		},
		ClothingType: clothingType,
	}, nil
}
