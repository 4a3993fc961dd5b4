package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jhoicas/clasificador/internal/domain"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#005577")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#50fa7b"}).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#626262", Dark: "#a8a8a8"})
)

// printTable escribe columnas y filas con bordes.
func printTable(w io.Writer, columns []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(columns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}

func printMuted(w io.Writer, msg string) {
	fmt.Fprintln(w, mutedStyle.Render(msg))
}

// parseAssignments convierte argumentos "campo=valor" en un mapa. El valor puede
// contener "=" y puede estar vacío (id_main_class= crea una clase raíz).
func parseAssignments(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: se esperaba campo=valor, se recibió %q", domain.ErrInvalidInput, arg)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("%w: campo %q repetido", domain.ErrInvalidInput, name)
		}
		out[name] = value
	}
	return out, nil
}
