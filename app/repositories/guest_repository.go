package repositories

import (
	"database/sql"

	"github.com/NMalikk/StayOpsApp/app/entities"
)

type GuestRepository interface {
	Exists(id int) (bool, error)
	GetByID(id int) (entities.Guest, error)
	Create(guest entities.Guest) (int, error)
	GetTotalSpent(id int) (float64, error)
}

type guestRepository struct {
	db *sql.DB
}

func NewGuestRepository(db *sql.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Exists(id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM guests WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *guestRepository) GetByID(id int) (entities.Guest, error) {
	var g entities.Guest
	query := `SELECT id, first_name, last_name, email, phone, total_spent FROM guests WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.TotalSpent)
	return g, err
}

func (r *guestRepository) Create(guest entities.Guest) (int, error) {
	var id int
	query := `
		INSERT INTO guests (first_name, last_name, email, phone, total_spent)
		VALUES ($1, $2, $3, $4, 0) RETURNING id`
	err := r.db.QueryRow(query, guest.FirstName, guest.LastName, guest.Email, guest.Phone).Scan(&id)
	return id, err
}

func (r *guestRepository) GetTotalSpent(id int) (float64, error) {
	var total float64
	err := r.db.QueryRow(`SELECT total_spent FROM guests WHERE id = $1`, id).Scan(&total)
	return total, err
}
