package mail

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// LogMailer no envía nada: registra el mensaje (desarrollo y tests manuales).
type LogMailer struct {
	log *logger.Logger
}

var _ ports.Mailer = (*LogMailer)(nil)

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log.Component("mail")}
}

func (m *LogMailer) Name() string { return config.MailLog }

func (m *LogMailer) Deliver(_ context.Context, msg ports.Message) error {
	m.log.Info().
		Str("to", msg.To).
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("correo (driver log)")
	return nil
}
