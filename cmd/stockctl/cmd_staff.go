package main

import (
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/application/auth"
	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/infrastructure/session"
	"github.com/spf13/cobra"
)

var staffIn dto.RegisterRequest

// stockctl staff
var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Gestión de empleados",
}

// stockctl staff create
var staffCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Crea un empleado (el primer admin se crea así)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := boot(ctx)
		if err != nil {
			return err
		}
		defer e.close(ctx)

		uc := auth.NewAuthUseCase(e.repos.Staff, session.NewMemoryStore(), auth.JWTConfig{
			Secret:     e.cfg.JWT.Secret,
			ExpMinutes: e.cfg.JWT.Expiration,
			Issuer:     e.cfg.JWT.Issuer,
		})
		created, err := uc.Register(ctx, staffIn)
		if err != nil {
			return fmt.Errorf("crear empleado: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "empleado %s creado (rol %s, id %s)\n", created.Username, created.Role, created.ID)
		return nil
	},
}

func init() {
	f := staffCreateCmd.Flags()
	f.StringVar(&staffIn.Username, "username", "", "username de acceso")
	f.StringVar(&staffIn.Email, "email", "", "email del empleado")
	f.StringVar(&staffIn.Name, "name", "", "nombre completo")
	f.StringVar(&staffIn.Phone, "phone", "", "teléfono")
	f.StringVar(&staffIn.Password, "password", "", "password (mínimo 8 caracteres)")
	f.StringVar(&staffIn.Role, "role", "staff", "admin o staff")
	for _, name := range []string{"username", "email", "password"} {
		_ = staffCreateCmd.MarkFlagRequired(name)
	}
	staffCmd.AddCommand(staffCreateCmd)
}
