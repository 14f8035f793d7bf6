package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// Estados de entrega.
const (
	StatusDelivered = "delivered"
	StatusFailed    = "failed"
)

// Result resultado de un intento de entrega. Reason solo se llena cuando Status es StatusFailed.
type Result struct {
	Status string
	Reason string
}

// Delivered indica si el mensaje fue aceptado por el transporte.
func (r Result) Delivered() bool { return r.Status == StatusDelivered }

// Notifier envuelve un ports.Mailer: intenta la entrega una sola vez, registra el resultado
// y nunca propaga errores al caso de uso que lo invoca.
type Notifier struct {
	mailer  ports.Mailer
	metrics ports.MetricsRecorder
	log     *logger.Logger
}

// NewNotifier construye el notificador. metrics puede ser nil.
func NewNotifier(mailer ports.Mailer, metrics ports.MetricsRecorder, log *logger.Logger) *Notifier {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &Notifier{mailer: mailer, metrics: metrics, log: log.Component("notifier")}
}

// Send entrega msg. Sin reintentos: un fallo se registra una vez y se devuelve como Result.
func (n *Notifier) Send(ctx context.Context, msg ports.Message) (res Result) {
	transport := "none"
	if n.mailer != nil {
		transport = n.mailer.Name()
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{Status: StatusFailed, Reason: fmt.Sprintf("panic en transporte: %v", r)}
		}
		n.record(transport, msg, res)
	}()

	if n.mailer == nil {
		return Result{Status: StatusFailed, Reason: "sin transporte de correo configurado"}
	}
	if strings.TrimSpace(msg.To) == "" {
		return Result{Status: StatusFailed, Reason: "destinatario vacío"}
	}
	if err := n.mailer.Deliver(ctx, msg); err != nil {
		return Result{Status: StatusFailed, Reason: err.Error()}
	}
	return Result{Status: StatusDelivered}
}

func (n *Notifier) record(transport string, msg ports.Message, res Result) {
	n.metrics.ObserveNotification(transport, res.Status)
	if res.Delivered() {
		n.log.Info().
			Str("transport", transport).
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("notificación entregada")
		return
	}
	n.log.Error().
		Str("transport", transport).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("reason", res.Reason).
		Msg("notificación fallida")
}
