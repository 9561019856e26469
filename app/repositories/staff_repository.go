package repositories

import (
	"database/sql"

	"github.com/NMalikk/StayOpsApp/app/entities"
)

type StaffRepository interface {
	GetByUsername(username string) (entities.Staff, error)
}

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByUsername(username string) (entities.Staff, error) {
	var s entities.Staff
	query := `SELECT id, username, password_hash, first_name, last_name, role FROM staff WHERE username = $1`
	err := r.db.QueryRow(query, username).Scan(
		&s.ID, &s.Username, &s.PasswordHash, &s.FirstName, &s.LastName, &s.Role,
	)
	return s, err
}
