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

type RoomHandler struct {
	roomUsecase    usecases.RoomUsecase
	pricingUsecase usecases.PricingUsecase
}

func NewRoomHandler(roomUsecase usecases.RoomUsecase, pricingUsecase usecases.PricingUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase, pricingUsecase: pricingUsecase}
}

const dateLayout = "2006-01-02"

// GetAvailability godoc
// @Summary Find available rooms
// @Description List rooms free for the whole stay window, optionally filtered by room or room type
// @Tags Room
// @Produce json
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param roomId query int false "Limit to a single room"
// @Param roomTypeId query int false "Limit to a room type"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /rooms/availability [get]
func (h *RoomHandler) GetAvailability(c echo.Context) error {
	checkIn, err := time.Parse(dateLayout, c.QueryParam("checkIn"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkIn date"})
	}
	checkOut, err := time.Parse(dateLayout, c.QueryParam("checkOut"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkOut date"})
	}

	var roomID, roomTypeID int
	if raw := c.QueryParam("roomId"); raw != "" {
		if roomID, err = strconv.Atoi(raw); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid roomId"})
		}
	}
	if raw := c.QueryParam("roomTypeId"); raw != "" {
		if roomTypeID, err = strconv.Atoi(raw); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid roomTypeId"})
		}
	}

	rooms, err := h.roomUsecase.FindAvailable(entities.AvailabilityQuery{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		RoomID:     roomID,
		RoomTypeID: roomTypeID,
	})
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": rooms})
}

// UpdateRoomPrice godoc
// @Summary Update a room type's base price
// @Description Set a new base price; existing reservations keep their snapshotted totals
// @Tags Room
// @Accept json
// @Produce json
// @Param id path int true "Room Type ID"
// @Param request body entities.UpdatePriceRequest true "New price"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /room-types/{id}/price [put]
func (h *RoomHandler) UpdateRoomPrice(c echo.Context) error {
	roomTypeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req entities.UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation error"})
	}

	role := middleware.ExtractRole(c)
	staffID := middleware.ExtractStaffID(c)

	if err := h.pricingUsecase.UpdateRoomPrice(role, staffID, roomTypeID, req.NewPrice); err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "price updated successfully"})
}
