package usecases

import (
	"database/sql"
	"encoding/json"
	"sort"
	"time"

	"github.com/NMalikk/StayOpsApp/app/entities"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// memStore backs the fake repositories with the same invariants the SQL
// layer enforces: half-open overlap on live rows only, status transitions,
// and the guest running total maintained on create and cancel.
type memStore struct {
	guests       map[int]entities.Guest
	roomTypes    map[int]entities.RoomType
	rooms        map[int]entities.RoomWithType
	reservations map[int]entities.Reservation
	nextResID    int
}

func newMemStore() *memStore {
	return &memStore{
		guests:       map[int]entities.Guest{},
		roomTypes:    map[int]entities.RoomType{},
		rooms:        map[int]entities.RoomWithType{},
		reservations: map[int]entities.Reservation{},
		nextResID:    1,
	}
}

func (s *memStore) addRoomType(id int, name string, price float64) {
	s.roomTypes[id] = entities.RoomType{ID: id, Name: name, BasePrice: price}
}

func (s *memStore) addRoom(id int, number string, typeID int) {
	rt := s.roomTypes[typeID]
	s.rooms[id] = entities.RoomWithType{
		Room:      entities.Room{ID: id, Number: number, Status: entities.RoomStatusAvailable, RoomTypeID: typeID},
		TypeName:  rt.Name,
		BasePrice: rt.BasePrice,
	}
}

func (s *memStore) addGuest(id int, name string) {
	s.guests[id] = entities.Guest{ID: id, FirstName: name, LastName: "Guest"}
}

func (s *memStore) addReservation(res entities.Reservation) int {
	if res.ID == 0 {
		res.ID = s.nextResID
	}
	if res.Status == "" {
		res.Status = entities.ReservationStatusActive
	}
	if res.ID >= s.nextResID {
		s.nextResID = res.ID + 1
	}
	s.reservations[res.ID] = res
	return res.ID
}

func (s *memStore) live(res entities.Reservation) bool {
	return res.Status == entities.ReservationStatusActive || res.Status == entities.ReservationStatusCheckedIn
}

func (s *memStore) hasConflict(roomID int, checkIn, checkOut time.Time) bool {
	for _, res := range s.reservations {
		if res.RoomID == roomID && s.live(res) &&
			res.CheckIn.Before(checkOut) && res.CheckOut.After(checkIn) {
			return true
		}
	}
	return false
}

type fakeGuestRepo struct{ store *memStore }

func (r *fakeGuestRepo) Exists(id int) (bool, error) {
	_, ok := r.store.guests[id]
	return ok, nil
}

func (r *fakeGuestRepo) GetByID(id int) (entities.Guest, error) {
	g, ok := r.store.guests[id]
	if !ok {
		return g, sql.ErrNoRows
	}
	return g, nil
}

func (r *fakeGuestRepo) Create(guest entities.Guest) (int, error) {
	guest.ID = len(r.store.guests) + 1
	r.store.guests[guest.ID] = guest
	return guest.ID, nil
}

func (r *fakeGuestRepo) GetTotalSpent(id int) (float64, error) {
	g, ok := r.store.guests[id]
	if !ok {
		return 0, sql.ErrNoRows
	}
	return g.TotalSpent, nil
}

type fakeRoomRepo struct{ store *memStore }

func (r *fakeRoomRepo) FindAvailable(q entities.AvailabilityQuery) ([]entities.AvailableRoom, error) {
	ids := make([]int, 0, len(r.store.rooms))
	for id := range r.store.rooms {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	available := []entities.AvailableRoom{}
	for _, id := range ids {
		room := r.store.rooms[id]
		if q.RoomID != 0 && room.ID != q.RoomID {
			continue
		}
		if q.RoomTypeID != 0 && room.RoomTypeID != q.RoomTypeID {
			continue
		}
		if r.store.hasConflict(room.ID, q.CheckIn, q.CheckOut) {
			continue
		}
		available = append(available, entities.AvailableRoom{
			RoomID: room.ID, Number: room.Number, TypeName: room.TypeName, BasePrice: room.BasePrice,
		})
	}
	return available, nil
}

func (r *fakeRoomRepo) IsAvailable(roomID int, q entities.AvailabilityQuery) (bool, error) {
	return !r.store.hasConflict(roomID, q.CheckIn, q.CheckOut), nil
}

func (r *fakeRoomRepo) GetWithType(id int) (entities.RoomWithType, error) {
	room, ok := r.store.rooms[id]
	if !ok {
		return room, sql.ErrNoRows
	}
	return room, nil
}

func (r *fakeRoomRepo) UpdateBasePrice(roomTypeID int, newPrice float64) (int64, error) {
	rt, ok := r.store.roomTypes[roomTypeID]
	if !ok {
		return 0, nil
	}
	rt.BasePrice = newPrice
	r.store.roomTypes[roomTypeID] = rt
	for id, room := range r.store.rooms {
		if room.RoomTypeID == roomTypeID {
			room.BasePrice = newPrice
			r.store.rooms[id] = room
		}
	}
	return 1, nil
}

type fakeReservationRepo struct{ store *memStore }

func (r *fakeReservationRepo) Create(data entities.NewReservationData) (int, error) {
	if r.store.hasConflict(data.RoomID, data.CheckIn, data.CheckOut) {
		return 0, entities.ErrRoomUnavailable
	}
	id := r.store.addReservation(entities.Reservation{
		GuestID:     data.GuestID,
		RoomID:      data.RoomID,
		StaffID:     data.StaffID,
		CheckIn:     data.CheckIn,
		CheckOut:    data.CheckOut,
		TotalAmount: data.TotalAmount,
		Status:      entities.ReservationStatusActive,
	})
	guest := r.store.guests[data.GuestID]
	guest.TotalSpent += data.TotalAmount
	r.store.guests[data.GuestID] = guest
	return id, nil
}

func (r *fakeReservationRepo) GetByID(id int) (entities.Reservation, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return res, sql.ErrNoRows
	}
	return res, nil
}

func (r *fakeReservationRepo) setStatus(reservationID int, status string) {
	res := r.store.reservations[reservationID]
	res.Status = status
	r.store.reservations[reservationID] = res
}

func (r *fakeReservationRepo) setRoomStatus(roomID int, status string) {
	room := r.store.rooms[roomID]
	room.Status = status
	r.store.rooms[roomID] = room
}

func (r *fakeReservationRepo) CheckIn(reservationID, roomID int) error {
	r.setStatus(reservationID, entities.ReservationStatusCheckedIn)
	r.setRoomStatus(roomID, entities.RoomStatusOccupied)
	return nil
}

func (r *fakeReservationRepo) CheckOut(reservationID, roomID int) error {
	r.setStatus(reservationID, entities.ReservationStatusCheckedOut)
	r.setRoomStatus(roomID, entities.RoomStatusAvailable)
	return nil
}

func (r *fakeReservationRepo) Cancel(reservationID int) error {
	res := r.store.reservations[reservationID]
	guest := r.store.guests[res.GuestID]
	guest.TotalSpent -= res.TotalAmount
	r.store.guests[res.GuestID] = guest
	r.setStatus(reservationID, entities.ReservationStatusCancelled)
	return nil
}

type fakeReportRepo struct {
	store        *memStore
	revenueItems []entities.RevenueReportItem
	spendTotals  []entities.GuestSpend
	revenueCalls int
	spendCalls   int
}

func (r *fakeReportRepo) RevenueByType() ([]entities.RevenueReportItem, error) {
	r.revenueCalls++
	return r.revenueItems, nil
}

func (r *fakeReportRepo) GetOverlapping(start, end time.Time) ([]entities.Reservation, error) {
	out := []entities.Reservation{}
	for _, res := range r.store.reservations {
		if r.store.live(res) && !res.CheckIn.After(end) && !res.CheckOut.Before(start) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) GuestSpendTotals() ([]entities.GuestSpend, error) {
	r.spendCalls++
	return r.spendTotals, nil
}

func (r *fakeReportRepo) Dashboard() ([]entities.DashboardItem, error) {
	numbers := make([]string, 0, len(r.store.rooms))
	byNumber := map[string]entities.RoomWithType{}
	for _, room := range r.store.rooms {
		numbers = append(numbers, room.Number)
		byNumber[room.Number] = room
	}
	sort.Strings(numbers)

	items := []entities.DashboardItem{}
	for _, number := range numbers {
		room := byNumber[number]
		item := entities.DashboardItem{RoomNumber: room.Number, TypeName: room.TypeName, Occupancy: room.Status}
		for _, res := range r.store.reservations {
			if res.RoomID == room.ID && res.Status == entities.ReservationStatusCheckedIn {
				dueOut := res.CheckOut
				item.DueOut = &dueOut
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// memCache is a real in-process cache so tests can observe hits and
// invalidation without redis.
type memCache struct{ data map[string][]byte }

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(key string, dest interface{}) bool {
	raw, ok := c.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *memCache) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.data[key] = raw
}

func (c *memCache) Invalidate() { c.data = map[string][]byte{} }
