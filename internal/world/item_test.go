package world

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestArmor_Clone(t *testing.T) {
	proto, err := NewArmor(ArmorFullPlate, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proto.Id = 40
	proto.Flags.Set(FlagDark)

	dup := proto.Clone()

	testutil.AssertEqual(t, "fresh ref", dup.Id, Nowhere)
	testutil.AssertEqual(t, "armor type", dup.ArmorType, proto.ArmorType)
	testutil.AssertEqual(t, "mod", dup.Mod, proto.Mod)
	testutil.AssertEqual(t, "flags copied", dup.Flags.String(), proto.Flags.String())

	// The clone's flag set is independent of the prototype's.
	dup.Flags.Clear(FlagDark)
	testutil.AssertEqual(t, "prototype keeps flag", proto.Flags.Has(FlagDark), true)
}

func TestArmor_Bonus(t *testing.T) {
	armor, err := NewArmor(ArmorChainmail, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "bonus", armor.ArmorBonus(), 7)
	testutil.AssertEqual(t, "value", armor.Value(), Coins(150))
	testutil.AssertEqual(t, "name", armor.Name, "chainmail armor")
}

func TestNewArmor_RejectsBadType(t *testing.T) {
	_, err := NewArmor(ArmorType(99), 0)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestJewelry_EffectAlwaysPermanent(t *testing.T) {
	jewelry, err := NewJewelry(ItemJewelry, "silver amulet", "", Effect{Name: "regeneration", Permanent: false, Duration: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "permanent", jewelry.Effect.Permanent, true)
	testutil.AssertEqual(t, "slot", jewelry.EquipSlot, SlotNeck)
}

func TestJewelry_RingSlot(t *testing.T) {
	ring, err := NewJewelry(ItemRing, "iron ring", "", Effect{Name: "strength"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "slot", ring.EquipSlot, SlotFinger)
}

func TestNewJewelry_RejectsNonJewelryType(t *testing.T) {
	_, err := NewJewelry(ItemArmor, "breastplate", "", Effect{})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestJewelry_CloneIndependentEffect(t *testing.T) {
	proto, err := NewJewelry(ItemRing, "gold ring", "", Effect{Name: "invisibility"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proto.Id = 8

	dup := proto.Clone()
	testutil.AssertEqual(t, "fresh ref", dup.Id, Nowhere)

	dup.Effect.Name = "haste"
	testutil.AssertEqual(t, "prototype effect", proto.Effect.Name, "invisibility")
}

func TestCoins_String(t *testing.T) {
	testutil.AssertEqual(t, "format", Coins(42).String(), "42 cp")
}
