package dto

import (
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockMutationRequest entrada para alta, entrada o salida de stock.
// Amount es puntero para distinguir "ausente" de cero.
type StockMutationRequest struct {
	Name   string           `json:"name" validate:"required"`
	Amount *decimal.Decimal `json:"amount" validate:"required,gte=0"`
}

// ProductStockResponse salida de un producto con su cantidad actual.
type ProductStockResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockMutationResponse resultado de una mutación.
type StockMutationResponse struct {
	Product    ProductStockResponse `json:"product"`
	Operation  string               `json:"operation"`
	AlertFired bool                 `json:"alert_fired"`
	Severity   string               `json:"severity,omitempty"`
}

// ToProductStockResponse mapea la entidad a la salida HTTP.
func ToProductStockResponse(p *entity.ProductStock) ProductStockResponse {
	return ProductStockResponse{
		ID:        p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		UpdatedAt: p.UpdatedAt,
	}
}
