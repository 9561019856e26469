package handler

import (
	"net/http"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/usecases"

	"github.com/labstack/echo/v4"
)

type GuestHandler struct {
	usecase usecases.GuestUsecase
}

func NewGuestHandler(usecase usecases.GuestUsecase) *GuestHandler {
	return &GuestHandler{usecase: usecase}
}

// RegisterGuest godoc
// @Summary Register a new guest
// @Description Add a guest to the hotel's guest book
// @Tags Guest
// @Accept json
// @Produce json
// @Param guest body entities.RegisterGuestRequest true "Guest data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /guests [post]
func (h *GuestHandler) RegisterGuest(c echo.Context) error {
	var req entities.RegisterGuestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation error"})
	}

	id, err := h.usecase.Register(req)
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "guest registered successfully", "id": id})
}
