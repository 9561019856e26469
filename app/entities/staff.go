package entities

// Staff roles. Only managers may change prices or read manager reports.
const (
	RoleFrontDesk = "frontdesk"
	RoleManager   = "manager"
)

type Staff struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role"`
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
