package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jhoicas/clasificador/pkg/config"
	"github.com/jhoicas/clasificador/pkg/logger"
)

var (
	configPath string
	logFile    string

	cfg *config.Config
	log = logger.Nop()
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#dc322f", Dark: "#ff5555"}).
	Bold(true)

var rootCmd = &cobra.Command{
	Use:   "clasificador",
	Short: "Clasificador jerárquico de productos sobre PostgreSQL",
	Long: `Clasificador permite consultar y mantener las tablas classification,
product y unit. Sin subcomando abre la interfaz de terminal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runTUI,
}

// Execute ejecuta el comando raíz y devuelve el código de salida.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "archivo ini (por defecto CONFIG_FILE o database.ini)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "escribir el log en este archivo")
}

// loadConfig carga la configuración y prepara el logger. La interfaz de terminal
// ocupa la pantalla, así que sin --log-file el log se descarta en ese modo.
func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("abrir log: %w", err)
		}
		log = logger.New(logger.Config{Env: "production", Level: cfg.App.LogLevel, Out: f})
	case !cmd.HasParent() || cmd.Name() == "tui":
		log = logger.Nop()
	default:
		log = logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Out: os.Stderr})
	}
	return nil
}
