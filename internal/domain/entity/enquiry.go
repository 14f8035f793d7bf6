package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variantes de Enquiry (comparten la misma forma de almacenamiento).
const (
	EnquiryKindLowStockAlert = "LowStockAlert" // generada por el monitor de umbral
	EnquiryKindStaffEnquiry  = "StaffEnquiry"  // enviada por un empleado
)

// Severidades de una alerta de stock bajo.
const (
	SeverityLowStock      = "LowStock"
	SeverityCriticallyLow = "CriticallyLow"
)

// Enquiry unión etiquetada: alerta de stock bajo o consulta de un empleado.
// Kind determina qué campos tienen sentido:
//   - LowStockAlert: Quantity = cantidad descontada, ResultingQuantity y Severity definidos.
//   - StaffEnquiry: Quantity = cantidad solicitada, Message = texto libre del empleado.
//
// Los datos del empleado son una copia al momento de escribir, no una referencia viva.
type Enquiry struct {
	ID                string
	Kind              string
	ProductName       string
	Quantity          decimal.Decimal
	ResultingQuantity decimal.NullDecimal
	Severity          string
	Message           string
	StaffUsername     string
	StaffName         string
	StaffEmail        string
	CreatedAt         time.Time
}

// IsAlert indica si el registro es una alerta de stock bajo.
func (e *Enquiry) IsAlert() bool {
	return e.Kind == EnquiryKindLowStockAlert
}

// Valid comprueba que los campos obligatorios de la variante estén presentes.
func (e *Enquiry) Valid() bool {
	if e.ProductName == "" || e.Quantity.IsNegative() {
		return false
	}
	switch e.Kind {
	case EnquiryKindLowStockAlert:
		return e.ResultingQuantity.Valid &&
			(e.Severity == SeverityLowStock || e.Severity == SeverityCriticallyLow)
	case EnquiryKindStaffEnquiry:
		return e.Message != "" && e.StaffUsername != ""
	}
	return false
}
