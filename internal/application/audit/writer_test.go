package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/application/audit"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
)

type brokenAuditRepo struct{ repository.AuditRepository }

func (brokenAuditRepo) Append(context.Context, *entity.AuditRecord) error {
	return errors.New("disco lleno")
}

func TestWriter_Append_EmpleadoAnonimo(t *testing.T) {
	repo := memory.NewAuditRepository()
	w := audit.NewWriter(repo, logger.Nop())

	rec := w.Append(context.Background(), "Widget", entity.OperationAdd, decimal.NewFromInt(10), "")
	require.NotNil(t, rec)
	assert.Equal(t, entity.UnknownStaff, rec.Staff)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	list, err := repo.List(context.Background(), repository.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
}

func TestWriter_Append_FalloNoPropaga(t *testing.T) {
	w := audit.NewWriter(brokenAuditRepo{}, logger.Nop())
	rec := w.Append(context.Background(), "Widget", entity.OperationDecrease, decimal.NewFromInt(1), "alice")
	assert.Nil(t, rec)
}

func TestHistory_List_FiltraYPagina(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAuditRepository()
	w := audit.NewWriter(repo, logger.Nop())
	w.Append(ctx, "Widget", entity.OperationAdd, decimal.NewFromInt(10), "alice")
	w.Append(ctx, "Gadget", entity.OperationAdd, decimal.NewFromInt(3), "bob")
	w.Append(ctx, "Widget", entity.OperationDecrease, decimal.NewFromInt(2), "")

	h := audit.NewHistory(repo)

	all, err := h.List(ctx, dto.AuditQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entity.OperationDecrease, all[0].Operation)

	widget, err := h.List(ctx, dto.AuditQuery{Product: " widget "})
	require.NoError(t, err)
	assert.Len(t, widget, 2)

	unknown, err := h.List(ctx, dto.AuditQuery{Staff: "unknown"})
	require.NoError(t, err)
	require.Len(t, unknown, 1)
	assert.Equal(t, entity.UnknownStaff, unknown[0].Staff)

	paged, err := h.List(ctx, dto.AuditQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "Gadget", paged[0].ProductName)
}
