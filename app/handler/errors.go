package handler

import (
	"errors"
	"net/http"

	"github.com/NMalikk/StayOpsApp/app/entities"
)

// statusFor maps usecase errors to HTTP status codes. Anything not in the
// taxonomy is a storage failure and surfaces as 500 with its message intact.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrGuestNotFound),
		errors.Is(err, entities.ErrRoomNotFound),
		errors.Is(err, entities.ErrRoomTypeNotFound),
		errors.Is(err, entities.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidDateRange),
		errors.Is(err, entities.ErrPastDate):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrRoomUnavailable),
		errors.Is(err, entities.ErrWrongCheckInDate),
		errors.Is(err, entities.ErrCannotCancelActive):
		return http.StatusConflict
	case errors.Is(err, entities.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
