package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockReportRow una línea del reporte de stock.
type StockReportRow struct {
	ProductName string
	Quantity    decimal.Decimal
	Status      string // OK, Bajo, Crítico
	UpdatedAt   time.Time
}

// StockReportGenerator genera la representación PDF del stock.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, title string, generatedAt time.Time, rows []StockReportRow) ([]byte, error)
}
