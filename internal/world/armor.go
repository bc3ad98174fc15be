package world

import (
	"fmt"
	"strconv"
)

// ArmorType identifies a class of armor with fixed combat properties.
// Ordinals are part of the record format and must not be reordered.
type ArmorType int

const (
	ArmorPadded ArmorType = iota
	ArmorLeather
	ArmorStuddedLeather
	ArmorChainShirt
	ArmorChainmail
	ArmorBreastplate
	ArmorHalfPlate
	ArmorFullPlate
)

var armorTypes = [...]struct {
	name         string
	bonus        int
	maxDex       int
	spellFailure float64
	weight       float64
	cost         Coins
}{
	ArmorPadded:         {"padded", 1, 8, 0.05, 10, 5},
	ArmorLeather:        {"leather", 2, 6, 0.10, 15, 10},
	ArmorStuddedLeather: {"studded leather", 3, 5, 0.15, 20, 25},
	ArmorChainShirt:     {"chain shirt", 4, 4, 0.20, 25, 100},
	ArmorChainmail:      {"chainmail", 5, 2, 0.30, 40, 150},
	ArmorBreastplate:    {"breastplate", 5, 3, 0.25, 30, 200},
	ArmorHalfPlate:      {"half-plate", 7, 0, 0.40, 50, 600},
	ArmorFullPlate:      {"full plate", 8, 1, 0.35, 50, 1500},
}

func (t ArmorType) valid() bool {
	return t >= ArmorPadded && t <= ArmorFullPlate
}

func (t ArmorType) String() string        { return armorTypes[t].name }
func (t ArmorType) Bonus() int            { return armorTypes[t].bonus }
func (t ArmorType) MaxDex() int           { return armorTypes[t].maxDex }
func (t ArmorType) SpellFailure() float64 { return armorTypes[t].spellFailure }
func (t ArmorType) Weight() float64       { return armorTypes[t].weight }
func (t ArmorType) Cost() Coins           { return armorTypes[t].cost }

// Armor is a wearable item granting an armor class bonus.
type Armor struct {
	Item

	ArmorType ArmorType

	// Mod is the enchantment modifier on top of the base armor bonus.
	Mod int
}

// NewArmor creates an unregistered armor of the given type. Register the
// result with a store before placing it in the world.
func NewArmor(armorType ArmorType, mod int) (*Armor, error) {
	if !armorType.valid() {
		return nil, &ValidationError{Err: fmt.Errorf("armor type %d out of range", armorType)}
	}
	return &Armor{
		Item: Item{
			Entity: Entity{
				Name:        fmt.Sprintf("%s armor", armorType),
				Description: "armor",
				Flags:       NewFlagSet(FlagItem),
			},
			Weight:     armorType.Weight(),
			Equippable: true,
			EquipSlot:  SlotBody,
			Type:       ItemArmor,
		},
		ArmorType: armorType,
		Mod:       mod,
	}, nil
}

// ArmorBonus is the effective armor class bonus including the modifier.
func (a *Armor) ArmorBonus() int {
	return a.ArmorType.Bonus() + a.Mod
}

func (a *Armor) Value() Coins {
	return a.ArmorType.Cost()
}

// Clone copies the armor as a fresh, unregistered entity with a zero ref.
// The caller is responsible for registering the clone before use. This is
// the prototype path: a loaded armor definition can be stamped into many
// concrete world objects.
func (a *Armor) Clone() *Armor {
	dup := *a
	dup.Id = Nowhere
	dup.Flags = NewFlagSet()
	for f := range a.Flags {
		dup.Flags.Set(f)
	}
	return &dup
}

// armorArity = base fields + item type + armor type + modifier.
const armorArity = baseArity + 3

func (a *Armor) Record() (string, error) {
	fields := append(a.recordFields(),
		strconv.Itoa(int(a.Type)),
		strconv.Itoa(int(a.ArmorType)),
		strconv.Itoa(a.Mod),
	)
	return joinRecord(fields)
}

// ParseArmor decodes an armor record.
func ParseArmor(record string) (*Armor, error) {
	fields, err := splitRecord("armor", record, armorArity)
	if err != nil {
		return nil, err
	}
	base, err := parseEntityFields("armor", fields)
	if err != nil {
		return nil, err
	}
	itemOrd, err := parseOrdinal("armor", "item type", fields[5])
	if err != nil {
		return nil, err
	}
	armorOrd, err := parseOrdinal("armor", "armor type", fields[6])
	if err != nil {
		return nil, err
	}
	if !ArmorType(armorOrd).valid() {
		return nil, &FormatError{Kind: "armor", Reason: fmt.Sprintf("armor type ordinal %d out of range", armorOrd)}
	}
	mod, err := parseOrdinal("armor", "modifier", fields[7])
	if err != nil {
		return nil, err
	}
	armorType := ArmorType(armorOrd)
	return &Armor{
		Item: Item{
			Entity:     base,
			Weight:     armorType.Weight(),
			Equippable: true,
			EquipSlot:  SlotBody,
			Type:       ItemType(itemOrd),
		},
		ArmorType: armorType,
		Mod:       mod,
	}, nil
}
