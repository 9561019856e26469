package usecases

import (
	"errors"
	"testing"
	"time"

	"github.com/NMalikk/StayOpsApp/app/entities"
)

func newRoomFixture() (*memStore, RoomUsecase) {
	store := newMemStore()
	store.addRoomType(1, "Standard", 100)
	store.addRoomType(2, "Deluxe", 150)
	store.addRoom(1, "101", 1)
	store.addRoom(2, "102", 1)
	store.addRoom(3, "201", 2)
	return store, NewRoomUsecase(&fakeRoomRepo{store: store})
}

func TestFindAvailableRejectsInvalidRange(t *testing.T) {
	_, uc := newRoomFixture()

	_, err := uc.FindAvailable(entities.AvailabilityQuery{
		CheckIn:  day(2024, time.June, 10),
		CheckOut: day(2024, time.June, 10),
	})
	if !errors.Is(err, entities.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestFindAvailableExcludesBookedRooms(t *testing.T) {
	store, uc := newRoomFixture()
	store.addReservation(entities.Reservation{
		GuestID: 1, RoomID: 2, CheckIn: day(2024, time.June, 10), CheckOut: day(2024, time.June, 12),
	})

	rooms, err := uc.FindAvailable(entities.AvailabilityQuery{
		CheckIn:  day(2024, time.June, 11),
		CheckOut: day(2024, time.June, 13),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 free rooms, got %d", len(rooms))
	}
	for _, room := range rooms {
		if room.RoomID == 2 {
			t.Fatal("booked room must not be listed")
		}
	}
}

func TestFindAvailableRoomTypeFilter(t *testing.T) {
	_, uc := newRoomFixture()

	rooms, err := uc.FindAvailable(entities.AvailabilityQuery{
		CheckIn:    day(2024, time.June, 10),
		CheckOut:   day(2024, time.June, 12),
		RoomTypeID: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomID != 3 {
		t.Fatalf("expected only the Deluxe room, got %+v", rooms)
	}
}

func TestFindAvailableSingleRoomCheck(t *testing.T) {
	store, uc := newRoomFixture()
	store.addReservation(entities.Reservation{
		GuestID: 1, RoomID: 1, CheckIn: day(2024, time.June, 10), CheckOut: day(2024, time.June, 12),
	})

	rooms, err := uc.FindAvailable(entities.AvailabilityQuery{
		CheckIn:  day(2024, time.June, 12),
		CheckOut: day(2024, time.June, 14),
		RoomID:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("room should be free from its own check-out day, got %d rows", len(rooms))
	}
}
