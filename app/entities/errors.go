package entities

import "errors"

// Validation and lookup failures returned by the usecase layer. Handlers map
// these to HTTP status codes with errors.Is; anything else is a storage error.
var (
	ErrGuestNotFound       = errors.New("guest not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDateRange    = errors.New("check-out must be after check-in")
	ErrPastDate            = errors.New("check-in date cannot be in the past")
	ErrRoomUnavailable     = errors.New("room is already booked for these dates")
	ErrWrongCheckInDate    = errors.New("check-in date is not today")
	ErrCannotCancelActive  = errors.New("cannot cancel past or active reservations")
	ErrAccessDenied        = errors.New("access denied: managers only")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
