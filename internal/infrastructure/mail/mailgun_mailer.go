package mail

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/mailgun/mailgun-go/v4"
)

// MailgunMailer entrega por la API de Mailgun.
type MailgunMailer struct {
	mg   *mailgun.MailgunImpl
	from string
}

var _ ports.Mailer = (*MailgunMailer)(nil)

func NewMailgunMailer(cfg config.MailConfig) *MailgunMailer {
	mg := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	if cfg.MailgunAPIBase != "" {
		mg.SetAPIBase(cfg.MailgunAPIBase)
	}
	from := cfg.From
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	}
	return &MailgunMailer{mg: mg, from: from}
}

func (m *MailgunMailer) Name() string { return config.MailMailgun }

func (m *MailgunMailer) Deliver(ctx context.Context, msg ports.Message) error {
	message := m.mg.NewMessage(m.from, msg.Subject, msg.Body, msg.To)
	if msg.ReplyTo != "" {
		message.SetReplyTo(msg.ReplyTo)
	}
	if _, _, err := m.mg.Send(ctx, message); err != nil {
		return fmt.Errorf("mailgun: %w", err)
	}
	return nil
}
