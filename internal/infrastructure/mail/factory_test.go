package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

func TestNewMailer_SeleccionaTransporte(t *testing.T) {
	base := config.MailConfig{
		From: "alertas@example.com", FromName: "Stock", SMTPHost: "localhost", SMTPPort: 25,
		SMTPUsername: "user", SendGridAPIKey: "SG.key", MailgunDomain: "mg.example.com", MailgunAPIKey: "key",
	}
	cases := map[string]string{
		config.MailSMTP:     config.MailSMTP,
		config.MailRelay:    config.MailRelay,
		config.MailSendGrid: config.MailSendGrid,
		config.MailMailgun:  config.MailMailgun,
		config.MailLog:      config.MailLog,
	}
	for driver, want := range cases {
		t.Run(driver, func(t *testing.T) {
			cfg := base
			cfg.Driver = driver
			m, err := NewMailer(cfg, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, want, m.Name())
		})
	}

	_, err := NewMailer(config.MailConfig{Driver: "paloma"}, logger.Nop())
	assert.Error(t, err)
}

func TestLogMailer_NoFalla(t *testing.T) {
	m, err := NewMailer(config.MailConfig{Driver: config.MailLog, Timeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, m.Deliver(context.Background(), ports.Message{To: "a@b.c", Subject: "s", Body: "b"}))
}

type slowMailer struct{}

func (slowMailer) Name() string { return "slow" }

func (slowMailer) Deliver(ctx context.Context, _ ports.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestTimeoutMailer_CortaEntregasLentas(t *testing.T) {
	m := &timeoutMailer{Mailer: slowMailer{}, timeout: 10 * time.Millisecond}
	err := m.Deliver(context.Background(), ports.Message{To: "a@b.c"})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "slow", m.Name())
}
