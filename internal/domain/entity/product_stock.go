package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// ProductStock representa la cantidad vigente de un producto.
// Name conserva las mayúsculas del primer alta; NameKey es la clave única de búsqueda.
type ProductStock struct {
	ID        string
	Name      string
	NameKey   string
	Quantity  decimal.Decimal // nunca negativa
	Version   int64           // se incrementa con cada cambio de cantidad (concurrencia optimista)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeName devuelve la clave de búsqueda insensible a mayúsculas de un nombre de producto.
// Usa case folding Unicode para que "ÁGUA", "água" y "Água" coincidan.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
