package dto

import (
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StaffEnquiryRequest consulta enviada por un empleado.
type StaffEnquiryRequest struct {
	Product  string           `json:"product" validate:"required"`
	Quantity *decimal.Decimal `json:"quantity" validate:"required,gte=0"`
	Message  string           `json:"message" validate:"required,max=2000"`
}

// EnquiryResponse salida de una alerta o consulta.
type EnquiryResponse struct {
	ID                string              `json:"id"`
	Kind              string              `json:"kind"`
	ProductName       string              `json:"product_name"`
	Quantity          decimal.Decimal     `json:"quantity"`
	ResultingQuantity decimal.NullDecimal `json:"resulting_quantity"`
	Severity          string              `json:"severity,omitempty"`
	Message           string              `json:"message"`
	StaffUsername     string              `json:"staff_username"`
	StaffName         string              `json:"staff_name,omitempty"`
	StaffEmail        string              `json:"staff_email,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

// ToEnquiryResponse mapea la entidad a la salida HTTP.
func ToEnquiryResponse(e *entity.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:                e.ID,
		Kind:              e.Kind,
		ProductName:       e.ProductName,
		Quantity:          e.Quantity,
		ResultingQuantity: e.ResultingQuantity,
		Severity:          e.Severity,
		Message:           e.Message,
		StaffUsername:     e.StaffUsername,
		StaffName:         e.StaffName,
		StaffEmail:        e.StaffEmail,
		CreatedAt:         e.CreatedAt,
	}
}
