package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo cuentas de empleados. Username y email son únicos sin distinguir mayúsculas.
type StaffRepo struct {
	q Querier
}

func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `id, name, phone, email, username, password_hash, role, created_at, updated_at`

func (r *StaffRepo) Create(ctx context.Context, s *entity.Staff) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO staff (`+staffColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Name, s.Phone, s.Email, s.Username, s.PasswordHash, s.Role, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if violatedConstraint(err) == "staff_email_uniq" {
				return domain.ErrEmailAlreadyExists
			}
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

func (r *StaffRepo) FindByUsername(ctx context.Context, username string) (*entity.Staff, error) {
	return r.findOne(ctx, `lower(username) = lower($1)`, username)
}

func (r *StaffRepo) FindByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	return r.findOne(ctx, `lower(email) = lower($1)`, email)
}

func (r *StaffRepo) List(ctx context.Context, limit, offset int) ([]*entity.Staff, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+staffColumns+` FROM staff ORDER BY lower(username) LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Staff, 0)
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Email, &s.Username, &s.PasswordHash, &s.Role, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StaffRepo) findOne(ctx context.Context, cond string, arg any) (*entity.Staff, error) {
	var s entity.Staff
	err := r.q.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE `+cond, arg).Scan(
		&s.ID, &s.Name, &s.Phone, &s.Email, &s.Username, &s.PasswordHash, &s.Role, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}
