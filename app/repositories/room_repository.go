package repositories

import (
	"database/sql"
	"fmt"

	"github.com/NMalikk/StayOpsApp/app/entities"
)

type RoomRepository interface {
	FindAvailable(q entities.AvailabilityQuery) ([]entities.AvailableRoom, error)
	IsAvailable(roomID int, q entities.AvailabilityQuery) (bool, error)
	GetWithType(id int) (entities.RoomWithType, error)
	UpdateBasePrice(roomTypeID int, newPrice float64) (int64, error)
}

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) RoomRepository {
	return &roomRepository{db: db}
}

// Half-open overlap: an existing stay [in, out) conflicts with the requested
// window iff check_in < reqOut AND check_out > reqIn. Cancelled and
// checked-out reservations never block a room.
const overlapCondition = `
	r.check_in_date < $2 AND r.check_out_date > $1
	AND r.status IN ('active', 'checked_in')`

func (r *roomRepository) FindAvailable(q entities.AvailabilityQuery) ([]entities.AvailableRoom, error) {
	query := `
		SELECT rm.id, rm.room_number, rt.type_name, rt.base_price
		FROM rooms rm
		JOIN room_types rt ON rm.room_type_id = rt.id
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.room_id = rm.id AND ` + overlapCondition + `
		)`

	args := []interface{}{q.CheckIn, q.CheckOut}
	argIdx := 3

	if q.RoomID != 0 {
		query += fmt.Sprintf(" AND rm.id = $%d", argIdx)
		args = append(args, q.RoomID)
		argIdx++
	}
	if q.RoomTypeID != 0 {
		query += fmt.Sprintf(" AND rm.room_type_id = $%d", argIdx)
		args = append(args, q.RoomTypeID)
		argIdx++
	}
	query += " ORDER BY rm.id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []entities.AvailableRoom{}
	for rows.Next() {
		var room entities.AvailableRoom
		if err := rows.Scan(&room.RoomID, &room.Number, &room.TypeName, &room.BasePrice); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *roomRepository) IsAvailable(roomID int, q entities.AvailabilityQuery) (bool, error) {
	var existing int
	query := `SELECT COUNT(*) FROM reservations r WHERE r.room_id = $3 AND ` + overlapCondition
	err := r.db.QueryRow(query, q.CheckIn, q.CheckOut, roomID).Scan(&existing)
	return existing == 0, err
}

func (r *roomRepository) GetWithType(id int) (entities.RoomWithType, error) {
	query := `
		SELECT rm.id, rm.room_number, rm.status, rm.room_type_id, rt.type_name, rt.base_price
		FROM rooms rm
		JOIN room_types rt ON rm.room_type_id = rt.id
		WHERE rm.id = $1`
	var room entities.RoomWithType
	err := r.db.QueryRow(query, id).Scan(
		&room.ID, &room.Number, &room.Status, &room.RoomTypeID, &room.TypeName, &room.BasePrice,
	)
	return room, err
}

func (r *roomRepository) UpdateBasePrice(roomTypeID int, newPrice float64) (int64, error) {
	res, err := r.db.Exec(`UPDATE room_types SET base_price = $1 WHERE id = $2`, newPrice, roomTypeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
