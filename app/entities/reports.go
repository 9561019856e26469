package entities

import "time"

type RevenueReportItem struct {
	TypeName             string  `json:"typeName"`
	TotalBookings        int     `json:"totalBookings"`
	TotalRevenue         float64 `json:"totalRevenue"`
	AvgRevenuePerBooking float64 `json:"avgRevenuePerBooking"`
}

type OccupancyReportItem struct {
	ReportDate    time.Time `json:"reportDate"`
	OccupiedCount int       `json:"occupiedCount"`
}

type TopGuestItem struct {
	GuestID    int     `json:"guestId"`
	TotalSpent float64 `json:"totalSpent"`
	Rank       int     `json:"rank"`
}

// GuestSpend is the total-spend row per guest used to build the ranking.
type GuestSpend struct {
	GuestID    int
	TotalSpent float64
}

// DashboardItem is one front-desk dashboard row: the room, its type and
// whether a guest is currently in it, with the due-out date when occupied.
type DashboardItem struct {
	RoomNumber string     `json:"roomNumber"`
	TypeName   string     `json:"typeName"`
	Occupancy  string     `json:"occupancy"`
	DueOut     *time.Time `json:"dueOut,omitempty"`
}
