package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// AuditRepository historial de auditoría en memoria.
type AuditRepository struct {
	mu      sync.RWMutex
	records []*entity.AuditRecord
}

var _ repository.AuditRepository = (*AuditRepository)(nil)

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Append(_ context.Context, record *entity.AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *record
	r.records = append(r.records, &cp)
	return nil
}

func (r *AuditRepository) List(_ context.Context, filter repository.AuditFilter) ([]*entity.AuditRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	staff := strings.ToLower(filter.Staff)
	product := entity.NormalizeName(filter.Product)

	matched := make([]*entity.AuditRecord, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if staff != "" && !strings.Contains(strings.ToLower(rec.Staff), staff) {
			continue
		}
		if product != "" && entity.NormalizeName(rec.ProductName) != product {
			continue
		}
		cp := *rec
		matched = append(matched, &cp)
	}
	return page(matched, filter.Limit, filter.Offset), nil
}

// page aplica offset y limit (limit <= 0 = sin límite).
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return items[:0]
	}
	if offset > 0 {
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
