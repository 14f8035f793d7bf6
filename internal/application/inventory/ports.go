package inventory

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/application/notify"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AuditAppender agrega un registro de auditoría; nunca devuelve error (lo implementa audit.Writer).
type AuditAppender interface {
	Append(ctx context.Context, productName, operation string, amount decimal.Decimal, staff string) *entity.AuditRecord
}

// ThresholdEvaluator decide si una salida dejó el producto bajo el umbral (lo implementa ThresholdMonitor).
type ThresholdEvaluator interface {
	Evaluate(ctx context.Context, in ThresholdInput) *entity.Enquiry
}

// AlertRecorder persiste alertas de stock bajo (lo implementa enquiry.Store).
type AlertRecorder interface {
	RecordLowStockAlert(ctx context.Context, alert *entity.Enquiry) error
}

// StaffDirectory resuelve empleados por username.
type StaffDirectory interface {
	FindByUsername(ctx context.Context, username string) (*entity.Staff, error)
}

// NotificationSender entrega notificaciones sin propagar errores (lo implementa notify.Notifier).
type NotificationSender interface {
	Send(ctx context.Context, msg ports.Message) notify.Result
}
