package main

import (
	"errors"
	"fmt"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jhoicas/clasificador/internal/interfaces/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Abrir la interfaz de terminal (igual que sin subcomando)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	styles, err := tui.LoadStyles(cfg.Files.Styles)
	notice := stylesNotice(cfg.Files.Styles, err)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("file", cfg.Files.Styles).Msg("hoja de estilos no encontrada, se usan los colores por defecto")
	case err != nil:
		log.Error().Err(err).Msg("hoja de estilos inválida, se usan los colores por defecto")
	}

	return withServices(cmd.Context(), func(svc *services) error {
		model := tui.NewModel(tui.Deps{
			Ctx:      cmd.Context(),
			Tables:   svc.tables,
			Records:  svc.records,
			Classes:  svc.classes,
			Products: svc.products,
			Styles:   styles,
			Notice:   notice,
		})
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err := p.Run()
		return err
	})
}

// stylesNotice arma el aviso que la interfaz muestra al abrir cuando la hoja de
// estilos falta o no se pudo leer; sin --log-file es la única forma de verlo.
func stylesNotice(path string, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("Aviso: hoja de estilos %s no encontrada, se usan los colores por defecto.", path)
	default:
		return fmt.Sprintf("Aviso: hoja de estilos inválida (%v), se usan los colores por defecto.", err)
	}
}
