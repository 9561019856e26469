package usecases

import (
	"fmt"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/repositories"
)

type RoomUsecase interface {
	FindAvailable(q entities.AvailabilityQuery) ([]entities.AvailableRoom, error)
}

type roomUsecase struct {
	roomRepo repositories.RoomRepository
}

func NewRoomUsecase(roomRepo repositories.RoomRepository) RoomUsecase {
	return &roomUsecase{roomRepo: roomRepo}
}

// FindAvailable lists rooms with no live reservation overlapping the
// requested window, optionally narrowed to one room or one room type.
func (u *roomUsecase) FindAvailable(q entities.AvailabilityQuery) ([]entities.AvailableRoom, error) {
	if !q.CheckOut.After(q.CheckIn) {
		return nil, entities.ErrInvalidDateRange
	}
	rooms, err := u.roomRepo.FindAvailable(q)
	if err != nil {
		return nil, fmt.Errorf("find available rooms: %w", err)
	}
	return rooms, nil
}
