package world

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestFlagSet_RoundTrip(t *testing.T) {
	flags := NewFlagSet(FlagWizard, FlagDark)
	testutil.AssertEqual(t, "string", flags.String(), "DW")

	parsed := ParseFlags("DW")
	testutil.AssertEqual(t, "equal", parsed.Equal(flags), true)
}

func TestFlagSet_SetClearHas(t *testing.T) {
	flags := NewFlagSet()

	testutil.AssertEqual(t, "empty", flags.Has(FlagBanned), false)
	flags.Set(FlagBanned)
	testutil.AssertEqual(t, "set", flags.Has(FlagBanned), true)
	flags.Set(FlagBanned) // idempotent
	testutil.AssertEqual(t, "string", flags.String(), "B")
	flags.Clear(FlagBanned)
	testutil.AssertEqual(t, "cleared", flags.Has(FlagBanned), false)
}

func TestFlagSet_StringIsSorted(t *testing.T) {
	flags := NewFlagSet(FlagWizard, FlagBanned, FlagSilent, FlagDark, FlagItem)
	testutil.AssertEqual(t, "sorted", flags.String(), "BDISW")
}

func TestKind_RoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindRoom, KindExit, KindItem, KindPlayer, KindThing} {
		parsed, ok := KindFromString(kind.String())
		if !ok {
			t.Errorf("%s: not recognized", kind)
			continue
		}
		testutil.AssertEqual(t, kind.String(), parsed, kind)
	}

	if _, ok := KindFromString("dragon"); ok {
		t.Error("unexpected kind")
	}
}
