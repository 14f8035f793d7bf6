package enquiry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/application/enquiry"
	"github.com/jhoicas/stockwatch-api/internal/application/notify"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

type stubSender struct {
	result notify.Result
	sent   []ports.Message
}

func (s *stubSender) Send(_ context.Context, msg ports.Message) notify.Result {
	s.sent = append(s.sent, msg)
	return s.result
}

func newStore(t *testing.T, sender enquiry.Sender) (*enquiry.Store, *memory.Store) {
	t.Helper()
	mem := memory.NewStore()
	require.NoError(t, mem.Staff.Create(context.Background(), &entity.Staff{
		ID: "s1", Name: "Bob Díaz", Email: "bob@example.com", Username: "bob", Role: entity.RoleStaff,
	}))
	return enquiry.NewStore(mem.Enquiries, mem.Staff, sender, "ops@example.com", logger.Nop()), mem
}

func TestRecordStaffEnquiry_GuardaCopiaDelEmpleado(t *testing.T) {
	sender := &stubSender{result: notify.Result{Status: notify.StatusDelivered}}
	store, _ := newStore(t, sender)

	e, err := store.RecordStaffEnquiry(context.Background(), "bob", enquiry.StaffEnquiryInput{
		Product: " Widget ", Quantity: decimal.NewFromInt(40), Message: "para el pedido del lunes",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EnquiryKindStaffEnquiry, e.Kind)
	assert.Equal(t, "Widget", e.ProductName)
	assert.Equal(t, "Bob Díaz", e.StaffName)
	assert.Equal(t, "bob@example.com", e.StaffEmail)
	assert.False(t, e.ResultingQuantity.Valid)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ops@example.com", sender.sent[0].To)
	assert.Equal(t, "bob@example.com", sender.sent[0].ReplyTo)
	assert.Contains(t, sender.sent[0].Body, "para el pedido del lunes")
}

func TestRecordStaffEnquiry_Errores(t *testing.T) {
	store, _ := newStore(t, &stubSender{})
	ctx := context.Background()
	valid := enquiry.StaffEnquiryInput{Product: "Widget", Quantity: decimal.NewFromInt(1), Message: "hola"}

	_, err := store.RecordStaffEnquiry(ctx, "", valid)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = store.RecordStaffEnquiry(ctx, "bob", enquiry.StaffEnquiryInput{Product: "Widget", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = store.RecordStaffEnquiry(ctx, "bob", enquiry.StaffEnquiryInput{Product: "Widget", Quantity: decimal.NewFromInt(-1), Message: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = store.RecordStaffEnquiry(ctx, "bob", enquiry.StaffEnquiryInput{Product: "Widget", Quantity: decimal.RequireFromString("0.00004"), Message: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = store.RecordStaffEnquiry(ctx, "nadie", valid)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRecordStaffEnquiry_FalloDeEntregaNoFalla(t *testing.T) {
	sender := &stubSender{result: notify.Result{Status: notify.StatusFailed, Reason: "timeout"}}
	store, mem := newStore(t, sender)

	_, err := store.RecordStaffEnquiry(context.Background(), "bob", enquiry.StaffEnquiryInput{
		Product: "Widget", Quantity: decimal.NewFromInt(1), Message: "urgente",
	})
	require.NoError(t, err)

	list, err := mem.Enquiries.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRecordLowStockAlert_ValidaVariante(t *testing.T) {
	store, _ := newStore(t, &stubSender{})
	ctx := context.Background()

	err := store.RecordLowStockAlert(ctx, &entity.Enquiry{Kind: entity.EnquiryKindStaffEnquiry, ProductName: "W"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.RecordLowStockAlert(ctx, &entity.Enquiry{Kind: entity.EnquiryKindLowStockAlert, ProductName: "W", Severity: entity.SeverityLowStock})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "sin cantidad resultante")

	alert := &entity.Enquiry{
		Kind:              entity.EnquiryKindLowStockAlert,
		ProductName:       "W",
		Quantity:          decimal.NewFromInt(100),
		ResultingQuantity: decimal.NewNullDecimal(decimal.NewFromInt(150)),
		Severity:          entity.SeverityLowStock,
		StaffUsername:     "bob",
	}
	require.NoError(t, store.RecordLowStockAlert(ctx, alert))
	assert.NotEmpty(t, alert.ID)

	list, err := store.ListAll(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.EnquiryKindLowStockAlert, list[0].Kind)
}
