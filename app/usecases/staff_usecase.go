package usecases

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/repositories"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type StaffUsecase interface {
	Login(username, password string) (string, entities.Staff, error)
}

type staffUsecase struct {
	staffRepo repositories.StaffRepository
	jwtSecret []byte
}

func NewStaffUsecase(staffRepo repositories.StaffRepository, jwtSecret string) StaffUsecase {
	return &staffUsecase{staffRepo: staffRepo, jwtSecret: []byte(jwtSecret)}
}

// Login verifies the staff credentials and returns a signed session token
// carrying id, username and role. Lookup and hash failures both come back as
// invalid credentials so the response does not leak which one happened.
func (u *staffUsecase) Login(username, password string) (string, entities.Staff, error) {
	staff, err := u.staffRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", staff, entities.ErrInvalidCredentials
		}
		return "", staff, fmt.Errorf("get staff: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", staff, entities.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":       staff.ID,
		"username": staff.Username,
		"role":     staff.Role,
		"exp":      jwt.NewNumericDate(time.Now().Add(8 * time.Hour)),
		"iat":      jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return "", staff, err
	}

	staff.PasswordHash = ""
	return signed, staff, nil
}
