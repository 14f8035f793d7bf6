package mail

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer entrega por la API v3 de SendGrid.
type SendGridMailer struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

var _ ports.Mailer = (*SendGridMailer)(nil)

func NewSendGridMailer(cfg config.MailConfig) *SendGridMailer {
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (m *SendGridMailer) Name() string { return config.MailSendGrid }

func (m *SendGridMailer) Deliver(ctx context.Context, msg ports.Message) error {
	email := sgmail.NewSingleEmail(
		sgmail.NewEmail(m.fromName, m.from),
		msg.Subject,
		sgmail.NewEmail("", msg.To),
		msg.Body,
		"",
	)
	if msg.ReplyTo != "" {
		email.SetReplyTo(sgmail.NewEmail("", msg.ReplyTo))
	}

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
