package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Writer agrega al historial un registro inmutable por cada mutación de stock.
// La llamada es síncrona (el ledger espera a que termine para que el historial sea visible
// en la siguiente lectura), pero un fallo de persistencia solo se registra en el log.
type Writer struct {
	repo repository.AuditRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewWriter construye el escritor de auditoría.
func NewWriter(repo repository.AuditRepository, log *logger.Logger) *Writer {
	return &Writer{repo: repo, log: log.Component("audit"), now: time.Now}
}

// Append registra la operación. staff vacío se guarda como entity.UnknownStaff.
// Devuelve el registro escrito, o nil si la persistencia falló.
func (w *Writer) Append(ctx context.Context, productName, operation string, amount decimal.Decimal, staff string) *entity.AuditRecord {
	if staff == "" {
		staff = entity.UnknownStaff
	}
	rec := &entity.AuditRecord{
		ID:          uuid.New().String(),
		ProductName: productName,
		Operation:   operation,
		Amount:      amount,
		Staff:       staff,
		CreatedAt:   w.now().UTC(),
	}
	if err := w.repo.Append(ctx, rec); err != nil {
		w.log.Error().Err(err).
			Str("product", productName).
			Str("operation", operation).
			Str("amount", amount.String()).
			Str("staff", staff).
			Msg("no se pudo escribir el registro de auditoría")
		return nil
	}
	return rec
}
