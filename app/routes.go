package app

import (
	"github.com/NMalikk/StayOpsApp/app/handler"
	"github.com/NMalikk/StayOpsApp/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	staffHandler *handler.StaffHandler,
	guestHandler *handler.GuestHandler,
	roomHandler *handler.RoomHandler,
	reservationHandler *handler.ReservationHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware echo.MiddlewareFunc,
) {
	e.POST("/login", staffHandler.Login)

	authGroup := e.Group("")
	authGroup.Use(authMiddleware)

	// Guest routes
	authGroup.POST("/guests", guestHandler.RegisterGuest)
	authGroup.GET("/guests/:id/spend", reportHandler.GetGuestSpend)

	// Room routes
	authGroup.GET("/rooms/availability", roomHandler.GetAvailability)

	// Reservation routes
	authGroup.POST("/reservations", reservationHandler.CreateReservation)
	authGroup.GET("/reservations/:id", reservationHandler.GetReservationByID)
	authGroup.POST("/reservations/:id/checkin", reservationHandler.CheckIn)
	authGroup.POST("/reservations/:id/checkout", reservationHandler.CheckOut)
	authGroup.DELETE("/reservations/:id", reservationHandler.CancelReservation)

	// Dashboard
	authGroup.GET("/dashboard", reportHandler.GetDashboard)

	// Manager routes
	managerGroup := e.Group("")
	managerGroup.Use(authMiddleware, middleware.ManagerOnly())
	managerGroup.PUT("/room-types/:id/price", roomHandler.UpdateRoomPrice)
	managerGroup.GET("/reports/revenue", reportHandler.GetRevenueReport)
	managerGroup.GET("/reports/occupancy", reportHandler.GetOccupancyReport)
	managerGroup.GET("/reports/top-guests", reportHandler.GetTopGuests)
}
