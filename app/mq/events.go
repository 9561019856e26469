package mq

import "time"

// Audit event types emitted on every reservation mutation and price change.
type EventType string

const (
	EventReservationCreated   EventType = "ReservationCreated"
	EventReservationCancelled EventType = "ReservationCancelled"
	EventGuestCheckedIn       EventType = "GuestCheckedIn"
	EventGuestCheckedOut      EventType = "GuestCheckedOut"
	EventRoomPriceUpdated     EventType = "RoomPriceUpdated"
)

// Event is the envelope written to the audit queue. RecordID is the
// reservation or room type the action touched; StaffID is who did it.
type Event struct {
	Type       EventType `json:"type"`
	RecordID   int       `json:"recordId"`
	StaffID    int       `json:"staffId"`
	Details    string    `json:"details,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
