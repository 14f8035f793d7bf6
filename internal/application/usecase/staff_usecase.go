package usecase

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// StaffUseCase consultas sobre las cuentas de empleados.
type StaffUseCase struct {
	repo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso con el puerto de persistencia.
func NewStaffUseCase(repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// List devuelve los empleados paginados, sin credenciales.
func (uc *StaffUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.StaffResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToStaffResponse(s))
	}
	return out, nil
}

// GetByUsername obtiene un empleado por username. nil, nil si no existe.
func (uc *StaffUseCase) GetByUsername(ctx context.Context, username string) (*dto.StaffResponse, error) {
	s, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	resp := dto.ToStaffResponse(s)
	return &resp, nil
}
