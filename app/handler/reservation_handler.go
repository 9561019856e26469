package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/usecases"
	"github.com/NMalikk/StayOpsApp/middleware"

	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	usecase usecases.ReservationUsecase
}

func NewReservationHandler(usecase usecases.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{usecase: usecase}
}

// CreateReservation godoc
// @Summary Create a reservation
// @Description Book a room for a guest over a date range; the total is priced at today's base rate
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body entities.CreateReservationRequest true "Reservation request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req entities.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation error"})
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkIn date"})
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkOut date"})
	}

	// The booking staff member comes from the session token, not the body.
	staffID := middleware.ExtractStaffID(c)

	created, err := h.usecase.Create(req.GuestID, req.RoomID, staffID, checkIn, checkOut)
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation created successfully", "data": created})
}

// GetReservationByID godoc
// @Summary Get a reservation
// @Description Fetch a live reservation by id
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservationByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	res, err := h.usecase.GetByID(id)
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": res})
}

// CheckIn godoc
// @Summary Check a guest in
// @Description Check in a reservation whose stay starts today; marks the room occupied
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/{id}/checkin [post]
func (h *ReservationHandler) CheckIn(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.usecase.CheckIn(id, middleware.ExtractStaffID(c)); err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "guest checked in"})
}

// CheckOut godoc
// @Summary Check a guest out
// @Description Close the stay and free the room
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/{id}/checkout [post]
func (h *ReservationHandler) CheckOut(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.usecase.CheckOut(id, middleware.ExtractStaffID(c)); err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "guest checked out"})
}

// CancelReservation godoc
// @Summary Cancel a reservation
// @Description Cancel a future reservation; stays already started must be checked out instead
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.usecase.Cancel(id, middleware.ExtractStaffID(c)); err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "reservation cancelled"})
}
