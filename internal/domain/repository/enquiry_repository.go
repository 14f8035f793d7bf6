package repository

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// EnquiryRepository sumidero append-only de alertas y consultas.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.Enquiry) error
	// List devuelve los registros más recientes primero.
	List(ctx context.Context, limit, offset int) ([]*entity.Enquiry, error)
}
