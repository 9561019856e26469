package repositories

import (
	"database/sql"

	"github.com/NMalikk/StayOpsApp/app/entities"
)

type ReservationRepository interface {
	Create(data entities.NewReservationData) (int, error)
	GetByID(id int) (entities.Reservation, error)
	CheckIn(reservationID, roomID int) error
	CheckOut(reservationID, roomID int) error
	Cancel(reservationID int) error
}

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// Create inserts the reservation inside a transaction that first locks the
// room row and re-runs the overlap check. Two writers racing on the same room
// serialize on the lock; the loser sees the winner's row and gets
// entities.ErrRoomUnavailable. The guest's running total is bumped in the
// same transaction so it can never drift from the reservation set.
func (r *reservationRepository) Create(data entities.NewReservationData) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var roomID int
	if err := tx.QueryRow(`SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, data.RoomID).Scan(&roomID); err != nil {
		return 0, err
	}

	var conflicts int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM reservations
		WHERE room_id = $1
		AND check_in_date < $3 AND check_out_date > $2
		AND status IN ('active', 'checked_in')`,
		data.RoomID, data.CheckIn, data.CheckOut,
	).Scan(&conflicts)
	if err != nil {
		return 0, err
	}
	if conflicts > 0 {
		return 0, entities.ErrRoomUnavailable
	}

	var reservationID int
	err = tx.QueryRow(`
		INSERT INTO reservations (guest_id, room_id, staff_id, check_in_date, check_out_date, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'active', NOW()) RETURNING id`,
		data.GuestID, data.RoomID, data.StaffID, data.CheckIn, data.CheckOut, data.TotalAmount,
	).Scan(&reservationID)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(`UPDATE guests SET total_spent = total_spent + $1 WHERE id = $2`,
		data.TotalAmount, data.GuestID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return reservationID, nil
}

func (r *reservationRepository) GetByID(id int) (entities.Reservation, error) {
	var res entities.Reservation
	query := `
		SELECT id, guest_id, room_id, staff_id, check_in_date, check_out_date, total_amount, status, created_at
		FROM reservations WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&res.ID, &res.GuestID, &res.RoomID, &res.StaffID,
		&res.CheckIn, &res.CheckOut, &res.TotalAmount, &res.Status, &res.CreatedAt,
	)
	return res, err
}

// CheckIn marks the reservation checked-in and the room occupied as one unit.
func (r *reservationRepository) CheckIn(reservationID, roomID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE reservations SET status = 'checked_in' WHERE id = $1`, reservationID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE rooms SET status = 'occupied' WHERE id = $1`, roomID); err != nil {
		return err
	}
	return tx.Commit()
}

// CheckOut closes the stay and frees the room as one unit. The row survives
// with status checked_out so reports and audit keep the booking history.
func (r *reservationRepository) CheckOut(reservationID, roomID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE reservations SET status = 'checked_out' WHERE id = $1`, reservationID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE rooms SET status = 'available' WHERE id = $1`, roomID); err != nil {
		return err
	}
	return tx.Commit()
}

// Cancel flips the status and rolls the amount back out of the guest's total.
func (r *reservationRepository) Cancel(reservationID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var guestID int
	var amount float64
	err = tx.QueryRow(`
		UPDATE reservations SET status = 'cancelled'
		WHERE id = $1 RETURNING guest_id, total_amount`, reservationID,
	).Scan(&guestID, &amount)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE guests SET total_spent = total_spent - $1 WHERE id = $2`, amount, guestID)
	if err != nil {
		return err
	}
	return tx.Commit()
}
