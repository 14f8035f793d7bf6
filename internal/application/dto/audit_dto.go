package dto

import (
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AuditQuery filtros del historial (query string).
type AuditQuery struct {
	Staff   string `query:"staff"`
	Product string `query:"product"`
	Limit   int    `query:"limit"`
	Offset  int    `query:"offset"`
}

// AuditRecordResponse salida de un registro de auditoría.
type AuditRecordResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Operation   string          `json:"operation"`
	Amount      decimal.Decimal `json:"amount"`
	Staff       string          `json:"staff"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToAuditRecordResponse mapea la entidad a la salida HTTP.
func ToAuditRecordResponse(r *entity.AuditRecord) AuditRecordResponse {
	return AuditRecordResponse{
		ID:          r.ID,
		ProductName: r.ProductName,
		Operation:   r.Operation,
		Amount:      r.Amount,
		Staff:       r.Staff,
		CreatedAt:   r.CreatedAt,
	}
}
