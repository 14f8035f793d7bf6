package inventory

import (
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Umbrales por defecto (unidades).
const (
	DefaultLowStockMark = 200
	DefaultCriticalMark = 100
)

// ThresholdPolicy servicio de dominio que clasifica una cantidad resultante.
//   - cantidad >= LowStock           → sin alerta
//   - Critical <= cantidad < LowStock → SeverityLowStock
//   - cantidad < Critical             → SeverityCriticallyLow
type ThresholdPolicy struct {
	LowStock decimal.Decimal
	Critical decimal.Decimal
}

// DefaultThresholdPolicy devuelve la política 200/100.
func DefaultThresholdPolicy() ThresholdPolicy {
	return ThresholdPolicy{
		LowStock: decimal.NewFromInt(DefaultLowStockMark),
		Critical: decimal.NewFromInt(DefaultCriticalMark),
	}
}

// NewThresholdPolicy construye la política; si critical supera a low se acota a low.
func NewThresholdPolicy(low, critical decimal.Decimal) ThresholdPolicy {
	if critical.GreaterThan(low) {
		critical = low
	}
	return ThresholdPolicy{LowStock: low, Critical: critical}
}

// Classify devuelve la severidad para qty y si está por debajo de la marca de stock bajo.
func (p ThresholdPolicy) Classify(qty decimal.Decimal) (severity string, below bool) {
	if qty.GreaterThanOrEqual(p.LowStock) {
		return "", false
	}
	if qty.LessThan(p.Critical) {
		return entity.SeverityCriticallyLow, true
	}
	return entity.SeverityLowStock, true
}

// Status etiqueta legible para reportes: OK, Bajo o Crítico.
func (p ThresholdPolicy) Status(qty decimal.Decimal) string {
	switch sev, below := p.Classify(qty); {
	case !below:
		return "OK"
	case sev == entity.SeverityCriticallyLow:
		return "Crítico"
	default:
		return "Bajo"
	}
}
