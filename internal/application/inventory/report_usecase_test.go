package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	domaininv "github.com/jhoicas/stockwatch-api/internal/domain/inventory"
)

type captureGenerator struct {
	title string
	rows  []ports.StockReportRow
}

func (g *captureGenerator) GenerateStockReport(_ context.Context, title string, _ time.Time, rows []ports.StockReportRow) ([]byte, error) {
	g.title = title
	g.rows = rows
	return []byte("%PDF"), nil
}

func TestReportUseCase_OrdenaYClasifica(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, "Tornillos", 500)
	f.seed(t, "Arandelas", 150)
	f.seed(t, "Clavos", 20)

	gen := &captureGenerator{}
	uc := inventory.NewReportUseCase(f.store.Products, domaininv.DefaultThresholdPolicy(), gen)

	pdf, err := uc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdf)
	assert.Equal(t, inventory.ReportTitle, gen.title)

	require.Len(t, gen.rows, 3)
	assert.Equal(t, "Arandelas", gen.rows[0].ProductName)
	assert.Equal(t, "Bajo", gen.rows[0].Status)
	assert.Equal(t, "Clavos", gen.rows[1].ProductName)
	assert.Equal(t, "Crítico", gen.rows[1].Status)
	assert.Equal(t, "OK", gen.rows[2].Status)
}
