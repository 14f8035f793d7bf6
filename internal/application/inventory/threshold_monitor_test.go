package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	"github.com/jhoicas/stockwatch-api/internal/application/notify"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stockwatch-api/internal/domain/inventory"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

type failingAlerts struct{ calls int }

func (f *failingAlerts) RecordLowStockAlert(context.Context, *entity.Enquiry) error {
	f.calls++
	return errors.New("mongo: timeout")
}

type okAlerts struct{}

func (okAlerts) RecordLowStockAlert(context.Context, *entity.Enquiry) error { return nil }

type alertMetric struct {
	severity  string
	persisted bool
}

type recordingMetrics struct {
	ports.NopMetrics
	alerts []alertMetric
}

func (r *recordingMetrics) ObserveLowStockAlert(severity string, persisted bool) {
	r.alerts = append(r.alerts, alertMetric{severity, persisted})
}

func TestThresholdMonitor_MetricaDistingueAlertasGuardadas(t *testing.T) {
	in := inventory.ThresholdInput{Product: "Widget", NewQuantity: dec(50), AmountRemoved: dec(5), Staff: "alice"}

	rec := &recordingMetrics{}
	m := inventory.NewThresholdMonitor(domaininv.DefaultThresholdPolicy(), &failingAlerts{}, nil,
		notify.NewNotifier(&stubMailer{}, nil, logger.Nop()), testRecipient, rec, logger.Nop())
	require.NotNil(t, m.Evaluate(context.Background(), in))

	m = inventory.NewThresholdMonitor(domaininv.DefaultThresholdPolicy(), okAlerts{}, nil,
		notify.NewNotifier(&stubMailer{}, nil, logger.Nop()), testRecipient, rec, logger.Nop())
	require.NotNil(t, m.Evaluate(context.Background(), in))

	assert.Equal(t, []alertMetric{
		{entity.SeverityCriticallyLow, false},
		{entity.SeverityCriticallyLow, true},
	}, rec.alerts)
}

func TestThresholdMonitor_FalloAlGuardarIgualNotifica(t *testing.T) {
	mailer := &stubMailer{}
	alerts := &failingAlerts{}
	m := inventory.NewThresholdMonitor(domaininv.DefaultThresholdPolicy(), alerts, nil,
		notify.NewNotifier(mailer, nil, logger.Nop()), testRecipient, nil, logger.Nop())

	alert := m.Evaluate(context.Background(), inventory.ThresholdInput{
		Product: "Widget", NewQuantity: dec(150), AmountRemoved: dec(100), Staff: "alice",
	})

	require.NotNil(t, alert)
	assert.Equal(t, 1, alerts.calls)
	assert.Equal(t, 1, mailer.count())
	assert.Equal(t, "alice", alert.StaffUsername)
	assert.Empty(t, alert.StaffEmail, "sin directorio de empleados no hay copia del email")
}

func TestThresholdMonitor_EmpleadoDesconocidoConservaUsername(t *testing.T) {
	store := memory.NewStore()
	mailer := &stubMailer{}
	notifier := notify.NewNotifier(mailer, nil, logger.Nop())
	m := inventory.NewThresholdMonitor(domaininv.DefaultThresholdPolicy(), &failingAlerts{}, store.Staff,
		notifier, testRecipient, nil, logger.Nop())

	alert := m.Evaluate(context.Background(), inventory.ThresholdInput{
		Product: "Widget", NewQuantity: dec(50), AmountRemoved: dec(5), Staff: "ghost",
	})

	require.NotNil(t, alert)
	assert.Equal(t, entity.SeverityCriticallyLow, alert.Severity)
	assert.Equal(t, "ghost", alert.StaffUsername)
	assert.Contains(t, alert.Message, "ghost")
	require.Equal(t, 1, mailer.count())
	assert.Contains(t, mailer.sent[0].Subject, "Stock crítico")
}

func TestThresholdMonitor_UmbralConfigurable(t *testing.T) {
	mailer := &stubMailer{}
	policy := domaininv.NewThresholdPolicy(dec(10), dec(5))
	m := inventory.NewThresholdMonitor(policy, &failingAlerts{}, nil,
		notify.NewNotifier(mailer, nil, logger.Nop()), testRecipient, nil, logger.Nop())

	assert.Nil(t, m.Evaluate(context.Background(), inventory.ThresholdInput{Product: "W", NewQuantity: dec(150), Staff: "alice"}))
	assert.NotNil(t, m.Evaluate(context.Background(), inventory.ThresholdInput{Product: "W", NewQuantity: dec(9), Staff: "alice"}))
}
