package repository

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductStockRepository define el puerto de persistencia para ProductStock (DIP).
type ProductStockRepository interface {
	// FindByNameKey busca por clave normalizada (entity.NormalizeName). Devuelve nil, nil si no existe.
	FindByNameKey(ctx context.Context, nameKey string) (*entity.ProductStock, error)
	// Create inserta un producto nuevo. Devuelve domain.ErrDuplicate si NameKey ya existe.
	Create(ctx context.Context, product *entity.ProductStock) error
	// UpdateQuantity escribe quantity solo si la versión almacenada sigue siendo expectedVersion
	// (compare-and-swap) y la incrementa. Devuelve domain.ErrConflict si otra escritura ganó.
	UpdateQuantity(ctx context.Context, id string, expectedVersion int64, quantity decimal.Decimal) error
	// List devuelve todos los productos en el orden natural del almacenamiento.
	List(ctx context.Context) ([]*entity.ProductStock, error)
}
