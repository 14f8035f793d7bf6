package mail

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"gopkg.in/gomail.v2"
)

// SMTPMailer entrega por SMTP con gomail. Cubre el relay local (sin auth, puerto 25)
// y los relays externos con usuario y TLS implícito.
type SMTPMailer struct {
	name     string
	dialer   *gomail.Dialer
	from     string
	fromName string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer relay SMTP local.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	d := &gomail.Dialer{Host: cfg.SMTPHost, Port: cfg.SMTPPort, SSL: cfg.SMTPSSL}
	if cfg.SMTPUsername != "" {
		d.Username = cfg.SMTPUsername
		d.Password = cfg.SMTPPassword
	}
	return &SMTPMailer{name: config.MailSMTP, dialer: d, from: cfg.From, fromName: cfg.FromName}
}

// NewRelayMailer SMTP autenticado contra un relay externo.
func NewRelayMailer(cfg config.MailConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	d.SSL = cfg.SMTPSSL
	d.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}
	return &SMTPMailer{name: config.MailRelay, dialer: d, from: cfg.From, fromName: cfg.FromName}
}

func (m *SMTPMailer) Name() string { return m.name }

// Deliver arma el mensaje y lo envía. gomail no acepta context, así que el envío corre
// en una goroutine y se abandona si ctx expira antes.
func (m *SMTPMailer) Deliver(ctx context.Context, msg ports.Message) error {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.from, m.fromName)
	gm.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(gm) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", m.name, ctx.Err())
	}
}
