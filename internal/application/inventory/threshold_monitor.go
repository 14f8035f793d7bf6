package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stockwatch-api/internal/domain/inventory"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// ThresholdInput estado posterior a una salida de stock.
type ThresholdInput struct {
	Product       string
	NewQuantity   decimal.Decimal
	AmountRemoved decimal.Decimal
	Staff         string // vacío si la mutación fue anónima
}

// ThresholdMonitor evalúa la cantidad resultante de una salida y, si quedó bajo la marca
// de stock bajo, guarda una alerta y avisa por correo.
//
// Reglas:
//   - cantidad >= marca: nada.
//   - sin empleado en sesión: se omite (no hay alertas de mutaciones anónimas).
//   - no hay ventana de de-duplicación: cada salida bajo la marca genera su propia alerta.
type ThresholdMonitor struct {
	policy    domaininv.ThresholdPolicy
	alerts    AlertRecorder
	staff     StaffDirectory
	sender    NotificationSender
	recipient string
	metrics   ports.MetricsRecorder
	log       *logger.Logger
	now       func() time.Time
}

// NewThresholdMonitor construye el monitor. recipient es el buzón que recibe las alertas.
func NewThresholdMonitor(
	policy domaininv.ThresholdPolicy,
	alerts AlertRecorder,
	staff StaffDirectory,
	sender NotificationSender,
	recipient string,
	metrics ports.MetricsRecorder,
	log *logger.Logger,
) *ThresholdMonitor {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &ThresholdMonitor{
		policy:    policy,
		alerts:    alerts,
		staff:     staff,
		sender:    sender,
		recipient: recipient,
		metrics:   metrics,
		log:       log.Component("threshold"),
		now:       time.Now,
	}
}

// Evaluate devuelve la alerta disparada o nil. Los fallos de persistencia y de entrega
// se registran y no interrumpen la operación que originó la salida.
func (m *ThresholdMonitor) Evaluate(ctx context.Context, in ThresholdInput) *entity.Enquiry {
	severity, below := m.policy.Classify(in.NewQuantity)
	if !below {
		return nil
	}
	if in.Staff == "" {
		m.log.Debug().
			Str("product", in.Product).
			Str("quantity", in.NewQuantity.String()).
			Msg("stock bajo en mutación anónima, alerta omitida")
		return nil
	}

	alert := &entity.Enquiry{
		ID:                uuid.New().String(),
		Kind:              entity.EnquiryKindLowStockAlert,
		ProductName:       in.Product,
		Quantity:          in.AmountRemoved,
		ResultingQuantity: decimal.NewNullDecimal(in.NewQuantity),
		Severity:          severity,
		StaffUsername:     in.Staff,
		CreatedAt:         m.now().UTC(),
	}
	m.snapshotStaff(ctx, alert)
	alert.Message = alertMessage(alert)

	err := m.alerts.RecordLowStockAlert(ctx, alert)
	if err != nil {
		m.log.Error().Err(err).
			Str("product", in.Product).
			Str("severity", severity).
			Msg("no se pudo guardar la alerta de stock bajo")
	}
	m.metrics.ObserveLowStockAlert(severity, err == nil)

	res := m.sender.Send(ctx, ports.Message{
		To:      m.recipient,
		Subject: alertSubject(alert),
		Body:    alert.Message,
		ReplyTo: alert.StaffEmail,
	})
	if !res.Delivered() {
		m.log.Warn().
			Str("alert_id", alert.ID).
			Str("reason", res.Reason).
			Msg("alerta de stock bajo sin notificación")
	}
	return alert
}

// snapshotStaff copia nombre y email del empleado; si no se puede resolver, queda solo el username.
func (m *ThresholdMonitor) snapshotStaff(ctx context.Context, alert *entity.Enquiry) {
	if m.staff == nil {
		return
	}
	member, err := m.staff.FindByUsername(ctx, alert.StaffUsername)
	if err != nil {
		m.log.Warn().Err(err).Str("staff", alert.StaffUsername).Msg("no se pudo resolver el empleado de la alerta")
		return
	}
	if member == nil {
		return
	}
	alert.StaffName = member.Name
	alert.StaffEmail = member.Email
}

func alertSubject(a *entity.Enquiry) string {
	label := "Stock bajo"
	if a.Severity == entity.SeverityCriticallyLow {
		label = "Stock crítico"
	}
	return fmt.Sprintf("[%s] %s: %s unidades", label, a.ProductName, a.ResultingQuantity.Decimal.String())
}

func alertMessage(a *entity.Enquiry) string {
	who := a.StaffUsername
	if a.StaffName != "" {
		who = fmt.Sprintf("%s (%s)", a.StaffName, a.StaffUsername)
	}
	return fmt.Sprintf("El producto %s quedó en %s unidades después de descontar %s. Movimiento registrado por %s.",
		a.ProductName, a.ResultingQuantity.Decimal.String(), a.Quantity.String(), who)
}
