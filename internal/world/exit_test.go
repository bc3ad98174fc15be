package world

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestExit_LockOnlyAffectsDoors(t *testing.T) {
	tests := []struct {
		exitType ExitType
		locks    bool
	}{
		{ExitDoor, true},
		{ExitPortal, false},
		{ExitStandard, false},
	}

	for _, tt := range tests {
		t.Run(tt.exitType.String(), func(t *testing.T) {
			exit, err := NewExit("north", 1, 2, tt.exitType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "initial", exit.IsLocked(), false)
			exit.Lock()
			testutil.AssertEqual(t, "after lock", exit.IsLocked(), tt.locks)
			exit.Unlock()
			testutil.AssertEqual(t, "after unlock", exit.IsLocked(), false)
		})
	}
}

func TestExit_LockableInterface(t *testing.T) {
	exit, err := NewExit("vault door", 1, 2, ExitDoor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var l Lockable = exit
	l.Lock()
	testutil.AssertEqual(t, "locked", l.IsLocked(), true)
}

func TestExit_RenderMessages(t *testing.T) {
	exit, err := NewExit("north", 1, 2, ExitStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exit.SuccMsg = "You slip through the {{ .Exit }} into {{ .Destination }}."
	exit.OSuccMsg = "{{ .Actor }} heads {{ .Exit }}."
	exit.FailMsg = "The {{ .Exit | title }} will not budge."

	ctx := TraversalContext{Actor: "Aria", Exit: "north", Destination: "the market"}

	got, err := exit.RenderSuccess(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "success", got, "You slip through the north into the market.")

	got, err = exit.RenderOtherSuccess(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "other success", got, "Aria heads north.")

	got, err = exit.RenderFail(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "fail", got, "The North will not budge.")
}

func TestExit_RenderBadTemplate(t *testing.T) {
	exit, err := NewExit("north", 1, 2, ExitStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exit.SuccMsg = "{{ .Missing"

	if _, err := exit.RenderSuccess(TraversalContext{}); err == nil {
		t.Error("expected parse error")
	}
}

func TestNewExit_RequiresName(t *testing.T) {
	_, err := NewExit("", 1, 2, ExitStandard)
	testutil.AssertErrorContains(t, err, "name is required")
}
