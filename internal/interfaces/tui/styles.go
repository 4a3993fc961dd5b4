package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// Palette colores de la interfaz. Cada valor es un hex ("#005577") o un código ANSI ("33").
type Palette struct {
	Primary string `mapstructure:"primary"`
	Accent  string `mapstructure:"accent"`
	Text    string `mapstructure:"text"`
	Muted   string `mapstructure:"muted"`
	Success string `mapstructure:"success"`
	Error   string `mapstructure:"error"`
	Border  string `mapstructure:"border"`
}

// DefaultPalette se usa cuando no hay hoja de estilos o le faltan claves.
func DefaultPalette() Palette {
	return Palette{
		Primary: "#005577",
		Accent:  "#00aadd",
		Text:    "#1a1a1a",
		Muted:   "#626262",
		Success: "#2e7d32",
		Error:   "#dc322f",
		Border:  "#000000",
	}
}

// Styles estilos lipgloss derivados de la paleta.
type Styles struct {
	Palette Palette

	Title         lipgloss.Style
	Button        lipgloss.Style
	ActiveButton  lipgloss.Style
	CurrentButton lipgloss.Style
	Label         lipgloss.Style
	Help          lipgloss.Style
	Muted         lipgloss.Style
	Form          lipgloss.Style
	Success       lipgloss.Style
	Error         lipgloss.Style
	Table         table.Styles
}

// NewStyles construye los estilos a partir de la paleta.
func NewStyles(p Palette) Styles {
	s := Styles{Palette: p}

	s.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Primary)).
		Bold(true).
		Margin(1, 0)

	s.Button = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Foreground(lipgloss.Color(p.Text)).
		Bold(true).
		Padding(0, 2)

	s.ActiveButton = s.Button.Copy().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(p.Primary)).
		BorderForeground(lipgloss.Color(p.Accent))

	s.CurrentButton = s.Button.Copy().
		BorderForeground(lipgloss.Color(p.Accent)).
		Underline(true)

	s.Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Primary)).
		Bold(true)

	s.Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Muted)).
		Margin(1, 0, 0, 0)

	s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))

	s.Form = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(1, 2).
		Margin(1, 0)

	s.Success = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Success)).
		Foreground(lipgloss.Color(p.Success)).
		Bold(true).
		Padding(0, 1)

	s.Error = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(p.Error)).
		Foreground(lipgloss.Color(p.Error)).
		Bold(true).
		Padding(0, 1)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(p.Primary)).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(p.Accent)).
		Bold(false)
	s.Table = ts

	return s
}

// DefaultStyles estilos de la paleta por defecto.
func DefaultStyles() Styles {
	return NewStyles(DefaultPalette())
}

// LoadStyles lee la hoja de estilos YAML. Ante cualquier error devuelve también
// los estilos por defecto, para que la interfaz arranque igual; el llamador
// decide si el error es un aviso (archivo inexistente) o algo a registrar.
func LoadStyles(path string) (Styles, error) {
	def := DefaultPalette()
	if path == "" {
		return NewStyles(def), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("primary", def.Primary)
	v.SetDefault("accent", def.Accent)
	v.SetDefault("text", def.Text)
	v.SetDefault("muted", def.Muted)
	v.SetDefault("success", def.Success)
	v.SetDefault("error", def.Error)
	v.SetDefault("border", def.Border)

	if err := v.ReadInConfig(); err != nil {
		return NewStyles(def), fmt.Errorf("hoja de estilos %s: %w", path, err)
	}
	var p Palette
	if err := v.Unmarshal(&p); err != nil {
		return NewStyles(def), fmt.Errorf("hoja de estilos %s: %w", path, err)
	}
	return NewStyles(p), nil
}
