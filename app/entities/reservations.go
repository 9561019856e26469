package entities

import "time"

// Reservation lifecycle. Rows are never deleted; cancellation and check-out
// flip the status so booking history survives for reporting and audit.
const (
	ReservationStatusActive     = "active"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

type Reservation struct {
	ID          int       `json:"id"`
	GuestID     int       `json:"guestId"`
	RoomID      int       `json:"roomId"`
	StaffID     int       `json:"staffId"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateReservationRequest struct {
	GuestID  int    `json:"guestId" validate:"required"`
	RoomID   int    `json:"roomId" validate:"required"`
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
}

// CreatedReservation is the success payload of a create call.
type CreatedReservation struct {
	ReservationID int     `json:"reservationId"`
	TotalAmount   float64 `json:"totalAmount"`
}

// NewReservationData is what the repository persists. TotalAmount is the
// price snapshot taken by the usecase at creation time.
type NewReservationData struct {
	GuestID     int
	RoomID      int
	StaffID     int
	CheckIn     time.Time
	CheckOut    time.Time
	TotalAmount float64
}
