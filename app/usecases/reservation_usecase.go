package usecases

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/mq"
	"github.com/NMalikk/StayOpsApp/app/repositories"
)

type ReservationUsecase interface {
	Create(guestID, roomID, staffID int, checkIn, checkOut time.Time) (entities.CreatedReservation, error)
	GetByID(id int) (entities.Reservation, error)
	CheckIn(reservationID, staffID int) error
	CheckOut(reservationID, staffID int) error
	Cancel(reservationID, staffID int) error
}

type reservationUsecase struct {
	resRepo   repositories.ReservationRepository
	roomRepo  repositories.RoomRepository
	guestRepo repositories.GuestRepository
	cache     repositories.ReportCache
	audit     mq.Publisher
	clock     Clock
}

func NewReservationUsecase(
	resRepo repositories.ReservationRepository,
	roomRepo repositories.RoomRepository,
	guestRepo repositories.GuestRepository,
	cache repositories.ReportCache,
	audit mq.Publisher,
	clock Clock,
) ReservationUsecase {
	return &reservationUsecase{
		resRepo:   resRepo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		cache:     cache,
		audit:     audit,
		clock:     clock,
	}
}

// Create validates in a fixed order (first failure wins, nothing written):
// guest exists, check-in not in the past, check-out after check-in, room free
// for the window, room and type exist. The total is a snapshot of the type's
// base price at this moment; later price changes never touch it. The insert
// re-checks the overlap under a room lock, so two racing creates for the same
// room cannot both succeed.
func (u *reservationUsecase) Create(guestID, roomID, staffID int, checkIn, checkOut time.Time) (entities.CreatedReservation, error) {
	var created entities.CreatedReservation

	exists, err := u.guestRepo.Exists(guestID)
	if err != nil {
		return created, fmt.Errorf("check guest: %w", err)
	}
	if !exists {
		return created, entities.ErrGuestNotFound
	}

	checkIn = dateOnly(checkIn)
	checkOut = dateOnly(checkOut)
	today := dateOnly(u.clock.Now())

	if checkIn.Before(today) {
		return created, entities.ErrPastDate
	}
	if !checkOut.After(checkIn) {
		return created, entities.ErrInvalidDateRange
	}

	available, err := u.roomRepo.IsAvailable(roomID, entities.AvailabilityQuery{CheckIn: checkIn, CheckOut: checkOut})
	if err != nil {
		return created, fmt.Errorf("check availability: %w", err)
	}
	if !available {
		return created, entities.ErrRoomUnavailable
	}

	room, err := u.roomRepo.GetWithType(roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return created, entities.ErrRoomNotFound
		}
		return created, fmt.Errorf("get room: %w", err)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	total := float64(nights) * room.BasePrice

	reservationID, err := u.resRepo.Create(entities.NewReservationData{
		GuestID:     guestID,
		RoomID:      roomID,
		StaffID:     staffID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: total,
	})
	if err != nil {
		if errors.Is(err, entities.ErrRoomUnavailable) {
			return created, entities.ErrRoomUnavailable
		}
		return created, fmt.Errorf("create reservation: %w", err)
	}

	u.cache.Invalidate()
	u.audit.Publish(mq.Event{
		Type:     mq.EventReservationCreated,
		RecordID: reservationID,
		StaffID:  staffID,
		Details:  fmt.Sprintf("room %d, %d nights, total %.2f", roomID, nights, total),
	})

	return entities.CreatedReservation{ReservationID: reservationID, TotalAmount: total}, nil
}

func (u *reservationUsecase) GetByID(id int) (entities.Reservation, error) {
	return u.getLive(id)
}

// getLive loads a reservation, treating cancelled and checked-out rows as
// gone: a closed booking no longer appears in any query.
func (u *reservationUsecase) getLive(id int) (entities.Reservation, error) {
	res, err := u.resRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, entities.ErrReservationNotFound
		}
		return res, fmt.Errorf("get reservation: %w", err)
	}
	if res.Status == entities.ReservationStatusCancelled || res.Status == entities.ReservationStatusCheckedOut {
		return res, entities.ErrReservationNotFound
	}
	return res, nil
}

// CheckIn requires the stay to start today exactly; early and late check-in
// are both rejected. Room occupancy flips in the same transaction as the
// reservation status.
func (u *reservationUsecase) CheckIn(reservationID, staffID int) error {
	res, err := u.getLive(reservationID)
	if err != nil {
		return err
	}

	if !dateOnly(res.CheckIn).Equal(dateOnly(u.clock.Now())) {
		return entities.ErrWrongCheckInDate
	}

	if err := u.resRepo.CheckIn(reservationID, res.RoomID); err != nil {
		return fmt.Errorf("check in: %w", err)
	}

	u.cache.Invalidate()
	u.audit.Publish(mq.Event{Type: mq.EventGuestCheckedIn, RecordID: reservationID, StaffID: staffID})
	return nil
}

func (u *reservationUsecase) CheckOut(reservationID, staffID int) error {
	res, err := u.getLive(reservationID)
	if err != nil {
		return err
	}

	if err := u.resRepo.CheckOut(reservationID, res.RoomID); err != nil {
		return fmt.Errorf("check out: %w", err)
	}

	u.cache.Invalidate()
	u.audit.Publish(mq.Event{Type: mq.EventGuestCheckedOut, RecordID: reservationID, StaffID: staffID})
	return nil
}

// Cancel rejects stays whose check-in date has already passed; those are
// active or concluded and must be closed through check-out instead.
func (u *reservationUsecase) Cancel(reservationID, staffID int) error {
	res, err := u.getLive(reservationID)
	if err != nil {
		return err
	}

	if dateOnly(res.CheckIn).Before(dateOnly(u.clock.Now())) {
		return entities.ErrCannotCancelActive
	}

	if err := u.resRepo.Cancel(reservationID); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	u.cache.Invalidate()
	u.audit.Publish(mq.Event{Type: mq.EventReservationCancelled, RecordID: reservationID, StaffID: staffID})
	return nil
}
