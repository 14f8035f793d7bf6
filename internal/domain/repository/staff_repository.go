package repository

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// StaffRepository define el puerto de persistencia para Staff (DIP).
type StaffRepository interface {
	// Create devuelve domain.ErrUsernameTaken o domain.ErrEmailAlreadyExists ante duplicados.
	Create(ctx context.Context, staff *entity.Staff) error
	// FindByUsername devuelve nil, nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.Staff, error)
	// FindByEmail devuelve nil, nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Staff, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Staff, error)
}
