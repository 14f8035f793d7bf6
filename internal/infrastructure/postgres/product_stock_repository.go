package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductStockRepository = (*ProductStockRepo)(nil)

// ProductStockRepo implementación del puerto ProductStockRepository sobre PostgreSQL (usable con pool o tx).
type ProductStockRepo struct {
	q Querier
}

// NewProductStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductStockRepository(q Querier) *ProductStockRepo {
	return &ProductStockRepo{q: q}
}

const productStockColumns = `id, name, name_key, quantity, version, created_at, updated_at`

// FindByNameKey obtiene un producto por su clave normalizada.
func (r *ProductStockRepo) FindByNameKey(ctx context.Context, nameKey string) (*entity.ProductStock, error) {
	var p entity.ProductStock
	err := r.q.QueryRow(ctx,
		`SELECT `+productStockColumns+` FROM product_stock WHERE name_key = $1`, nameKey,
	).Scan(&p.ID, &p.Name, &p.NameKey, &p.Quantity, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product stock: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductStockRepo) Create(ctx context.Context, p *entity.ProductStock) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO product_stock (`+productStockColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.NameKey, p.Quantity, p.Version, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product stock: %w", err)
	}
	return nil
}

// UpdateQuantity compare-and-swap sobre version.
func (r *ProductStockRepo) UpdateQuantity(ctx context.Context, id string, expectedVersion int64, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE product_stock SET quantity = $3, version = version + 1, updated_at = now()
		 WHERE id = $1 AND version = $2`,
		id, expectedVersion, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_stock WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check product stock: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

// List lista todos los productos en orden de alta.
func (r *ProductStockRepo) List(ctx context.Context) ([]*entity.ProductStock, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productStockColumns+` FROM product_stock ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list product stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductStock
	for rows.Next() {
		var p entity.ProductStock
		if err := rows.Scan(&p.ID, &p.Name, &p.NameKey, &p.Quantity, &p.Version, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
