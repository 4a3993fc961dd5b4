package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/clasificador/internal/application/auth"
	"github.com/jhoicas/clasificador/internal/application/dto"
)

var (
	tokenUser     string
	tokenPassword string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Obtener un token Bearer para las escrituras de la API",
	Long: `Verifica usuario y contraseña contra ADMIN_PASSWORD_HASH y emite un JWT
firmado con JWT_SECRET. La contraseña también puede pasarse en ADMIN_PASSWORD.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		password := tokenPassword
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}
		user := tokenUser
		if user == "" {
			user = cfg.Auth.AdminUser
		}
		out, err := newAuthUseCase().Login(dto.LoginRequest{User: user, Password: password})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Token)
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <contraseña>",
	Short: "Generar el valor de ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	// No necesita configuración ni base de datos.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUser, "user", "u", "", "usuario (por defecto ADMIN_USER)")
	tokenCmd.Flags().StringVarP(&tokenPassword, "password", "p", "", "contraseña")

	rootCmd.AddCommand(tokenCmd, hashPasswordCmd)
}
