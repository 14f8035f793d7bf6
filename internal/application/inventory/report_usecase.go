package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/application/ports"
	domaininv "github.com/jhoicas/stockwatch-api/internal/domain/inventory"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// ReportTitle título del reporte PDF de stock.
const ReportTitle = "Reporte de stock"

// ReportUseCase genera el reporte PDF de existencias con el estado de cada producto.
type ReportUseCase struct {
	repo      repository.ProductStockRepository
	policy    domaininv.ThresholdPolicy
	generator ports.StockReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(repo repository.ProductStockRepository, policy domaininv.ThresholdPolicy, generator ports.StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, policy: policy, generator: generator, now: time.Now}
}

// Rows devuelve las filas del reporte ordenadas por nombre.
func (uc *ReportUseCase) Rows(ctx context.Context) ([]ports.StockReportRow, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]ports.StockReportRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ports.StockReportRow{
			ProductName: p.Name,
			Quantity:    p.Quantity,
			Status:      uc.policy.Status(p.Quantity),
			UpdatedAt:   p.UpdatedAt,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ProductName < rows[j].ProductName })
	return rows, nil
}

// Generate devuelve el PDF del reporte.
func (uc *ReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	rows, err := uc.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, ReportTitle, uc.now(), rows)
}
