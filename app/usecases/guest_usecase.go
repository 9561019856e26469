package usecases

import (
	"fmt"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/repositories"
)

type GuestUsecase interface {
	Register(req entities.RegisterGuestRequest) (int, error)
}

type guestUsecase struct {
	guestRepo repositories.GuestRepository
}

func NewGuestUsecase(guestRepo repositories.GuestRepository) GuestUsecase {
	return &guestUsecase{guestRepo: guestRepo}
}

func (u *guestUsecase) Register(req entities.RegisterGuestRequest) (int, error) {
	id, err := u.guestRepo.Create(entities.Guest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return 0, fmt.Errorf("register guest: %w", err)
	}
	return id, nil
}
