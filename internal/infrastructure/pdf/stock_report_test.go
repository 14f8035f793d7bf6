package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
)

func TestFormatUnits(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"150":      "150",
		"25000":    "25.000",
		"1000000":  "1.000.000",
		"1234.5":   "1.234,50",
		"-1500.25": "-1.500,25",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatUnits(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateStockReport_ProducePDF(t *testing.T) {
	g := NewMarotoStockReport("stockwatch")
	rows := []ports.StockReportRow{
		{ProductName: "Arandelas", Quantity: decimal.NewFromInt(150), Status: "Bajo", UpdatedAt: time.Now()},
		{ProductName: "Clavos", Quantity: decimal.NewFromInt(20), Status: "Crítico"},
		{ProductName: "Tornillos", Quantity: decimal.NewFromInt(5000), Status: "OK"},
	}
	doc, err := g.GenerateStockReport(context.Background(), "Reporte de stock", time.Now(), rows)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))

	empty, err := g.GenerateStockReport(context.Background(), "Reporte de stock", time.Now(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, empty)
}
