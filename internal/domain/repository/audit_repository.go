package repository

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// AuditFilter filtros del historial de auditoría.
type AuditFilter struct {
	Staff   string // subcadena del username, sin distinguir mayúsculas
	Product string // nombre exacto, sin distinguir mayúsculas
	Limit   int
	Offset  int
}

// AuditRepository sumidero append-only del historial de movimientos de stock.
type AuditRepository interface {
	Append(ctx context.Context, record *entity.AuditRecord) error
	// List devuelve los registros más recientes primero.
	List(ctx context.Context, filter AuditFilter) ([]*entity.AuditRecord, error)
}
