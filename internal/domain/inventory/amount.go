package inventory

import "github.com/shopspring/decimal"

// MaxAmountScale decimales admitidos en una cantidad; coincide con NUMERIC(20,4) en Postgres.
const MaxAmountScale = 4

// maxAmount cota exclusiva: 16 dígitos enteros, que con 4 decimales caben en NUMERIC(20,4)
// y en los 34 dígitos de Decimal128.
var maxAmount = decimal.New(1, 16)

// ValidAmount indica si la cantidad es no negativa, tiene a lo sumo MaxAmountScale decimales
// y queda por debajo de 1e16. Postgres y Mongo la guardan sin redondeo.
func ValidAmount(d decimal.Decimal) bool {
	if d.IsNegative() || d.GreaterThanOrEqual(maxAmount) {
		return false
	}
	return d.Equal(d.Truncate(MaxAmountScale))
}
