package dto

import (
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// RegisterRequest alta de un empleado (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=40"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin staff"`
}

// StaffResponse salida de un empleado (sin credenciales).
type StaffResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token de sesión (también se envía como cookie).
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Staff     StaffResponse `json:"staff"`
}

// ToStaffResponse mapea la entidad a la salida HTTP.
func ToStaffResponse(s *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Phone:     s.Phone,
		Email:     s.Email,
		Username:  s.Username,
		Role:      s.Role,
		CreatedAt: s.CreatedAt,
	}
}
