package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.EnquiryRepository = (*EnquiryRepo)(nil)

// EnquiryRepo alertas y consultas en la tabla enquiries.
type EnquiryRepo struct {
	q Querier
}

func NewEnquiryRepository(q Querier) *EnquiryRepo {
	return &EnquiryRepo{q: q}
}

func (r *EnquiryRepo) Create(ctx context.Context, e *entity.Enquiry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO enquiries (id, kind, product_name, quantity, resulting_quantity, severity, message,
			staff_username, staff_name, staff_email, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.Kind, e.ProductName, e.Quantity, e.ResultingQuantity, e.Severity, e.Message,
		e.StaffUsername, e.StaffName, e.StaffEmail, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

func (r *EnquiryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Enquiry, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, kind, product_name, quantity, resulting_quantity, severity, message,
			staff_username, staff_name, staff_email, created_at
		 FROM enquiries ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Enquiry, 0)
	for rows.Next() {
		var e entity.Enquiry
		if err := rows.Scan(&e.ID, &e.Kind, &e.ProductName, &e.Quantity, &e.ResultingQuantity, &e.Severity, &e.Message,
			&e.StaffUsername, &e.StaffName, &e.StaffEmail, &e.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
