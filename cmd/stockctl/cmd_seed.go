package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/stockwatch-api/internal/application/audit"
	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/spf13/cobra"
)

var (
	seedFile     string
	seedEncoding string
	seedStaff    string
)

// stockctl seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga existencias desde un CSV (nombre,cantidad)",
	Long: "Cada fila pasa por el ledger como alta o entrada de stock, " +
		"así que queda en el historial de auditoría igual que una operación de la API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return fmt.Errorf("abrir CSV: %w", err)
		}
		defer f.Close()

		rows, err := parseSeedCSV(f, seedEncoding)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		e, err := boot(ctx)
		if err != nil {
			return err
		}
		defer e.close(ctx)

		// Solo entradas: el monitor de umbral no interviene.
		ledger := inventory.NewLedger(e.repos.Products, audit.NewWriter(e.repos.Audit, e.log), nil, nil, e.log, e.cfg.Stock.MaxRetries)
		var added, increased int
		for _, row := range rows {
			res, err := ledger.AddOrIncrease(ctx, inventory.MutationInput{Name: row.Name, Amount: row.Amount, Staff: seedStaff})
			if err != nil {
				return fmt.Errorf("línea %d (%s): %w", row.Line, row.Name, err)
			}
			if res.Operation == entity.OperationAdd {
				added++
			} else {
				increased++
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d filas: %d productos nuevos, %d entradas\n", len(rows), added, increased)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "ruta del CSV")
	seedCmd.Flags().StringVar(&seedEncoding, "encoding", "utf8", "codificación del archivo: utf8, latin1 o windows-1252")
	seedCmd.Flags().StringVar(&seedStaff, "staff", "seed", "nombre que queda en la auditoría (vacío = Unknown Staff)")
	_ = seedCmd.MarkFlagRequired("file")
}
