package usecases

import (
	"errors"
	"testing"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/mq"
	"github.com/NMalikk/StayOpsApp/app/repositories"
)

func newPricingFixture() (*memStore, PricingUsecase) {
	store := newMemStore()
	store.addRoomType(1, "Standard", 100)
	uc := NewPricingUsecase(&fakeRoomRepo{store: store}, repositories.NopReportCache{}, mq.NopPublisher{})
	return store, uc
}

func TestUpdateRoomPriceRequiresManager(t *testing.T) {
	store, uc := newPricingFixture()

	err := uc.UpdateRoomPrice(entities.RoleFrontDesk, 7, 1, 175)
	if !errors.Is(err, entities.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if got := store.roomTypes[1].BasePrice; got != 100 {
		t.Fatalf("denied update must leave the price unchanged, got %v", got)
	}
}

func TestUpdateRoomPrice(t *testing.T) {
	store, uc := newPricingFixture()

	if err := uc.UpdateRoomPrice(entities.RoleManager, 7, 1, 175); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.roomTypes[1].BasePrice; got != 175 {
		t.Fatalf("expected price 175, got %v", got)
	}
}

func TestUpdateRoomPriceUnknownType(t *testing.T) {
	_, uc := newPricingFixture()

	err := uc.UpdateRoomPrice(entities.RoleManager, 7, 99, 175)
	if !errors.Is(err, entities.ErrRoomTypeNotFound) {
		t.Fatalf("expected ErrRoomTypeNotFound, got %v", err)
	}
}
