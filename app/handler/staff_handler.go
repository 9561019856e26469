package handler

import (
	"net/http"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/usecases"

	"github.com/labstack/echo/v4"
)

type StaffHandler struct {
	usecase usecases.StaffUsecase
}

func NewStaffHandler(usecase usecases.StaffUsecase) *StaffHandler {
	return &StaffHandler{usecase: usecase}
}

// Login godoc
// @Summary Staff login
// @Description Authenticate a staff member and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginData body entities.Login true "Login data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *StaffHandler) Login(c echo.Context) error {
	var loginData entities.Login
	if err := c.Bind(&loginData); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid format"})
	}
	if err := c.Validate(&loginData); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation error"})
	}

	token, staff, err := h.usecase.Login(loginData.Username, loginData.Password)
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}

	c.Response().Header().Set("Authorization", "Bearer "+token)
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
		"staff":   staff,
	})
}
