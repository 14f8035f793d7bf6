// stockctl tareas de administración fuera del servidor HTTP: carga inicial de stock
// desde CSV, alta de empleados y reporte PDF de existencias.
//
// Uso:
//
//	stockctl seed --file stock.csv [--encoding latin1] [--staff admin]
//	stockctl staff create --username ana --email ana@example.com --password ... --role admin
//	stockctl report --out reporte.pdf
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/stockwatch-api/internal/infrastructure/store"
	"github.com/jhoicas/stockwatch-api/pkg/config"
	"github.com/jhoicas/stockwatch-api/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "stockctl",
	Short:        "Administración de stockwatch",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(staffCmd)
	rootCmd.AddCommand(reportCmd)
}

// env configuración, logger y almacén abiertos para un comando.
type env struct {
	cfg   *config.Config
	log   *logger.Logger
	repos *store.Repositories
}

// boot carga la configuración (mismas variables que la API) y abre el almacén.
func boot(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	repos, err := store.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("abrir almacén: %w", err)
	}
	return &env{cfg: cfg, log: log, repos: repos}, nil
}

func (e *env) close(ctx context.Context) {
	if err := e.repos.Close(ctx); err != nil {
		e.log.Error().Err(err).Msg("cierre del almacén")
	}
}
