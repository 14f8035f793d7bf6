package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación sobre el stock.
const (
	OperationAdd      = "Add"      // alta de un producto nuevo
	OperationIncrease = "Increase" // entrada sobre un producto existente
	OperationDecrease = "Decrease" // salida
)

// UnknownStaff se registra cuando la mutación no trae sesión.
const UnknownStaff = "Unknown Staff"

// AuditRecord entrada inmutable del historial de movimientos de stock.
type AuditRecord struct {
	ID          string
	ProductName string
	Operation   string
	Amount      decimal.Decimal
	Staff       string // username que actuó o UnknownStaff
	CreatedAt   time.Time
}

// IsValidOperation indica si op es uno de los tipos de operación conocidos.
func IsValidOperation(op string) bool {
	switch op {
	case OperationAdd, OperationIncrease, OperationDecrease:
		return true
	}
	return false
}
