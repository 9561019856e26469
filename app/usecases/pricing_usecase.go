package usecases

import (
	"fmt"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/mq"
	"github.com/NMalikk/StayOpsApp/app/repositories"
)

type PricingUsecase interface {
	UpdateRoomPrice(requesterRole string, staffID, roomTypeID int, newPrice float64) error
}

type pricingUsecase struct {
	roomRepo repositories.RoomRepository
	cache    repositories.ReportCache
	audit    mq.Publisher
}

func NewPricingUsecase(roomRepo repositories.RoomRepository, cache repositories.ReportCache, audit mq.Publisher) PricingUsecase {
	return &pricingUsecase{roomRepo: roomRepo, cache: cache, audit: audit}
}

// UpdateRoomPrice changes a type's base price for future reservations only.
// Existing reservations keep the total they snapshotted at creation. The
// requester's role comes from the authenticated session, never from the body.
func (u *pricingUsecase) UpdateRoomPrice(requesterRole string, staffID, roomTypeID int, newPrice float64) error {
	if requesterRole != entities.RoleManager {
		return entities.ErrAccessDenied
	}

	affected, err := u.roomRepo.UpdateBasePrice(roomTypeID, newPrice)
	if err != nil {
		return fmt.Errorf("update base price: %w", err)
	}
	if affected == 0 {
		return entities.ErrRoomTypeNotFound
	}

	u.cache.Invalidate()
	u.audit.Publish(mq.Event{
		Type:     mq.EventRoomPriceUpdated,
		RecordID: roomTypeID,
		StaffID:  staffID,
		Details:  fmt.Sprintf("new price %.2f", newPrice),
	})
	return nil
}
