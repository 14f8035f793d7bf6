package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	domaininv "github.com/jhoicas/stockwatch-api/internal/domain/inventory"
	infrapdf "github.com/jhoicas/stockwatch-api/internal/infrastructure/pdf"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var reportOut string

// stockctl report
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Genera el reporte PDF de existencias",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := boot(ctx)
		if err != nil {
			return err
		}
		defer e.close(ctx)

		policy := domaininv.NewThresholdPolicy(
			decimal.NewFromInt(int64(e.cfg.Stock.LowThreshold)),
			decimal.NewFromInt(int64(e.cfg.Stock.CriticalThreshold)),
		)
		uc := inventory.NewReportUseCase(e.repos.Products, policy, infrapdf.NewMarotoStockReport(e.cfg.App.Name))
		pdf, err := uc.Generate(ctx)
		if err != nil {
			return fmt.Errorf("generar reporte: %w", err)
		}
		if err := os.WriteFile(reportOut, pdf, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", reportOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reporte escrito en %s (%d bytes)\n", reportOut, len(pdf))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "reporte-stock.pdf", "archivo de salida")
}
