package entity

import "time"

// Roles válidos para Staff.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Staff representa una cuenta de empleado.
type Staff struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano
	Role         string // admin, staff
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole indica si role es un rol conocido.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
