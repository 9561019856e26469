package entities

import "time"

// Room occupancy, driven only by check-in and check-out.
const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"
)

type RoomType struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}

type Room struct {
	ID         int    `json:"id"`
	Number     string `json:"number"`
	Status     string `json:"status"`
	RoomTypeID int    `json:"roomTypeId"`
}

// RoomWithType is a room joined with its type, as needed for pricing.
type RoomWithType struct {
	Room
	TypeName  string  `json:"typeName"`
	BasePrice float64 `json:"basePrice"`
}

// AvailableRoom is one row of an availability query result.
type AvailableRoom struct {
	RoomID    int     `json:"roomId"`
	Number    string  `json:"number"`
	TypeName  string  `json:"typeName"`
	BasePrice float64 `json:"basePrice"`
}

// AvailabilityQuery carries the requested stay window plus optional filters.
// Zero values mean no filter.
type AvailabilityQuery struct {
	CheckIn    time.Time
	CheckOut   time.Time
	RoomID     int
	RoomTypeID int
}

type UpdatePriceRequest struct {
	NewPrice float64 `json:"newPrice" validate:"required,gt=0"`
}
