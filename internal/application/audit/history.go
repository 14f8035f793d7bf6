package audit

import (
	"context"
	"strings"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// History consulta del historial de auditoría para el visor de administración.
type History struct {
	repo repository.AuditRepository
}

// NewHistory construye el caso de uso de consulta.
func NewHistory(repo repository.AuditRepository) *History {
	return &History{repo: repo}
}

// List devuelve los registros más recientes primero, filtrando opcionalmente por
// subcadena del empleado y por producto.
func (h *History) List(ctx context.Context, q dto.AuditQuery) ([]dto.AuditRecordResponse, error) {
	page := dto.PageRequest{Limit: q.Limit, Offset: q.Offset}
	page.DefaultPage()

	records, err := h.repo.List(ctx, repository.AuditFilter{
		Staff:   strings.TrimSpace(q.Staff),
		Product: strings.TrimSpace(q.Product),
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ToAuditRecordResponse(r))
	}
	return out, nil
}
