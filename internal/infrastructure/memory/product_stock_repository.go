package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductStockRepository implementación en memoria (tests y STORE_DRIVER=memory).
type ProductStockRepository struct {
	mu    sync.RWMutex
	byKey map[string]*entity.ProductStock
	order []string // orden de inserción de las claves
}

var _ repository.ProductStockRepository = (*ProductStockRepository)(nil)

// NewProductStockRepository crea un repositorio vacío.
func NewProductStockRepository() *ProductStockRepository {
	return &ProductStockRepository{byKey: make(map[string]*entity.ProductStock)}
}

func (r *ProductStockRepository) FindByNameKey(_ context.Context, nameKey string) (*entity.ProductStock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byKey[nameKey]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductStockRepository) Create(_ context.Context, product *entity.ProductStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKey[product.NameKey]; ok {
		return domain.ErrDuplicate
	}
	cp := *product
	r.byKey[product.NameKey] = &cp
	r.order = append(r.order, product.NameKey)
	return nil
}

func (r *ProductStockRepository) UpdateQuantity(_ context.Context, id string, expectedVersion int64, quantity decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byKey {
		if p.ID != id {
			continue
		}
		if p.Version != expectedVersion {
			return domain.ErrConflict
		}
		p.Quantity = quantity
		p.Version++
		p.UpdatedAt = time.Now().UTC()
		return nil
	}
	return domain.ErrNotFound
}

func (r *ProductStockRepository) List(_ context.Context) ([]*entity.ProductStock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.ProductStock, 0, len(r.order))
	for _, key := range r.order {
		cp := *r.byKey[key]
		out = append(out, &cp)
	}
	return out, nil
}
