package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

// NewMailer elige el transporte según MAIL_DRIVER. Cada entrega queda acotada por MAIL_TIMEOUT.
func NewMailer(cfg config.MailConfig, log *logger.Logger) (ports.Mailer, error) {
	var m ports.Mailer
	switch cfg.Driver {
	case config.MailSMTP:
		m = NewSMTPMailer(cfg)
	case config.MailRelay:
		m = NewRelayMailer(cfg)
	case config.MailSendGrid:
		m = NewSendGridMailer(cfg)
	case config.MailMailgun:
		m = NewMailgunMailer(cfg)
	case config.MailLog, "":
		m = NewLogMailer(log)
	default:
		return nil, fmt.Errorf("mail: driver desconocido %q", cfg.Driver)
	}
	if cfg.Timeout > 0 {
		m = &timeoutMailer{Mailer: m, timeout: cfg.Timeout}
	}
	return m, nil
}

type timeoutMailer struct {
	ports.Mailer
	timeout time.Duration
}

func (t *timeoutMailer) Deliver(ctx context.Context, msg ports.Message) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Mailer.Deliver(ctx, msg)
}
