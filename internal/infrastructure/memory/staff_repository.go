package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// StaffRepository cuentas de empleados en memoria. Username y email son únicos sin distinguir mayúsculas.
type StaffRepository struct {
	mu    sync.RWMutex
	staff []*entity.Staff
}

var _ repository.StaffRepository = (*StaffRepository)(nil)

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{}
}

func (r *StaffRepository) Create(_ context.Context, s *entity.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.staff {
		if strings.EqualFold(existing.Username, s.Username) {
			return domain.ErrUsernameTaken
		}
		if strings.EqualFold(existing.Email, s.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *s
	r.staff = append(r.staff, &cp)
	return nil
}

func (r *StaffRepository) FindByUsername(_ context.Context, username string) (*entity.Staff, error) {
	return r.find(func(s *entity.Staff) bool { return strings.EqualFold(s.Username, username) }), nil
}

func (r *StaffRepository) FindByEmail(_ context.Context, email string) (*entity.Staff, error) {
	return r.find(func(s *entity.Staff) bool { return strings.EqualFold(s.Email, email) }), nil
}

func (r *StaffRepository) List(_ context.Context, limit, offset int) ([]*entity.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Staff, 0, len(r.staff))
	for _, s := range r.staff {
		cp := *s
		out = append(out, &cp)
	}
	return page(out, limit, offset), nil
}

func (r *StaffRepository) find(match func(*entity.Staff) bool) *entity.Staff {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.staff {
		if match(s) {
			cp := *s
			return &cp
		}
	}
	return nil
}
