package world

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestHouseSize_MaxRooms(t *testing.T) {
	tests := []struct {
		size HouseSize
		want int
	}{
		{HouseSmall, 5},
		{HouseMedium, 10},
		{HouseLarge, 15},
		{HouseCustom, -1},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			testutil.AssertEqual(t, "cap", tt.size.MaxRooms(), tt.want)
		})
	}
}

func TestNewHouse_RejectsCustomTier(t *testing.T) {
	_, err := NewHouse(1, HouseCustom)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestNewHouse_RequiresOwner(t *testing.T) {
	_, err := NewHouse(Nowhere, HouseSmall)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestNewCustomHouse_RejectsNonPositiveCap(t *testing.T) {
	for _, roomCap := range []int{0, -3} {
		_, err := NewCustomHouse(1, roomCap)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("cap %d: expected ValidationError, got %v", roomCap, err)
		}
	}

	house, err := NewCustomHouse(1, 37)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "cap", house.MaxRooms(), 37)

	for i := 0; i < 37; i++ {
		if err := house.AddRoom(Ref(100 + i)); err != nil {
			t.Fatalf("room %d: unexpected error: %v", i, err)
		}
	}
	if err := house.AddRoom(999); err == nil {
		t.Error("expected error at custom cap")
	}
}

func TestHouse_AddRoomEnforcesCap(t *testing.T) {
	house, err := NewHouse(1, HouseSmall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < house.MaxRooms(); i++ {
		if err := house.AddRoom(Ref(100 + i)); err != nil {
			t.Fatalf("room %d: unexpected error: %v", i, err)
		}
	}

	// Past the cap the list must be left unchanged.
	if err := house.AddRoom(999); err == nil {
		t.Error("expected error at cap")
	}
	testutil.AssertEqual(t, "rooms", len(house.Rooms()), house.MaxRooms())
}

func TestHouse_RemoveRoom(t *testing.T) {
	house, err := NewHouse(1, HouseSmall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := house.AddRoom(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "present", house.RemoveRoom(10), true)
	testutil.AssertEqual(t, "absent", house.RemoveRoom(10), false)
	testutil.AssertEqual(t, "rooms", len(house.Rooms()), 0)

	// Removal frees a slot
	if err := house.AddRoom(11); err != nil {
		t.Errorf("unexpected error after removal: %v", err)
	}
}

func TestHouse_Placements(t *testing.T) {
	house, err := NewHouse(2, HouseMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	house.PlaceThing(50, Point{X: 1, Y: 2})
	house.PlaceItem(60, Point{X: 3, Y: 4})
	house.PlaceThing(50, Point{X: 5, Y: 6}) // reposition

	testutil.AssertEqual(t, "thing", house.Things[50], Point{X: 5, Y: 6})
	testutil.AssertEqual(t, "item", house.Items[60], Point{X: 3, Y: 4})
}

func TestHouse_Info(t *testing.T) {
	house, err := NewHouse(3, HouseLarge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info := house.Info()
	testutil.AssertEqual(t, "lines", len(info), 4)
	testutil.AssertEqual(t, "owner", info[1], "Owner: #3")
	testutil.AssertEqual(t, "size", info[2], "Size: large")
	testutil.AssertEqual(t, "cap", info[3], "Max Rooms: 15")
}
