package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/NMalikk/StayOpsApp/app/usecases"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	usecase usecases.ReportUsecase
}

func NewReportHandler(usecase usecases.ReportUsecase) *ReportHandler {
	return &ReportHandler{usecase: usecase}
}

// GetRevenueReport godoc
// @Summary Revenue by room type
// @Description Booking count, total and average revenue per room type
// @Tags Report
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /reports/revenue [get]
func (h *ReportHandler) GetRevenueReport(c echo.Context) error {
	items, err := h.usecase.Revenue()
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": items})
}

// GetOccupancyReport godoc
// @Summary Day-by-day occupancy
// @Description One row per calendar day in the inclusive range, zero-occupancy days included
// @Tags Report
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /reports/occupancy [get]
func (h *ReportHandler) GetOccupancyReport(c echo.Context) error {
	start, err := time.Parse(dateLayout, c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start date"})
	}
	end, err := time.Parse(dateLayout, c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end date"})
	}

	items, err := h.usecase.Occupancy(start, end)
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": items})
}

// GetTopGuests godoc
// @Summary Top spending guests
// @Description Guests ranked by total reservation spend, ties sharing ranks, top 10 ranks only
// @Tags Report
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /reports/top-guests [get]
func (h *ReportHandler) GetTopGuests(c echo.Context) error {
	items, err := h.usecase.TopGuests()
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": items})
}

// GetGuestSpend godoc
// @Summary Guest total spend
// @Description Running total of a guest's reservation spend
// @Tags Report
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /guests/{id}/spend [get]
func (h *ReportHandler) GetGuestSpend(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	total, err := h.usecase.GuestTotalSpend(id)
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": echo.Map{"guestId": id, "totalSpent": total}})
}

// GetDashboard godoc
// @Summary Front desk dashboard
// @Description Every room with its type, current occupancy and due-out date when occupied
// @Tags Report
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ReportHandler) GetDashboard(c echo.Context) error {
	items, err := h.usecase.Dashboard()
	if err != nil {
		return c.JSON(statusFor(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success", "data": items})
}
