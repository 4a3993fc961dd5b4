package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/clasificador/internal/application/dto"
)

// gridColumns botones de tabla por fila.
const gridColumns = 3

const maxColumnWidth = 32

type action int

const (
	actionAdd action = iota
	actionChangeClass
	actionFindProducts
	actionChangeParent
	actionFindChildren
)

var actions = []struct {
	id    action
	label string
}{
	{actionAdd, "+"},
	{actionChangeClass, "Cambiar clase de producto"},
	{actionFindProducts, "Buscar productos por clase"},
	{actionChangeParent, "Cambiar clase padre"},
	{actionFindChildren, "Buscar descendientes de clase"},
}

type tableLoadedMsg struct {
	data *dto.TableDataResponse
}

// MainModel pantalla principal: botones de tabla en grilla, la tabla actual y las acciones.
type MainModel struct {
	deps       Deps
	tables     []dto.TableInfo
	current    int // tabla mostrada
	cursor     int // botón con foco: primero las tablas, luego las acciones
	focusTable bool
	data       *dto.TableDataResponse
	view       table.Model
	width      int
	height     int
}

func NewMainModel(deps Deps) *MainModel {
	view := table.New(
		table.WithFocused(false),
		table.WithHeight(12),
		table.WithStyles(deps.Styles.Table),
	)
	return &MainModel{
		deps:   deps,
		tables: deps.Tables.Tables(),
		view:   view,
	}
}

// Init carga la primera tabla, que es la vista inicial.
func (m *MainModel) Init() tea.Cmd {
	if len(m.tables) == 0 {
		return nil
	}
	return m.load(0)
}

func (m *MainModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Botones, acciones y ayuda ocupan alrededor de 16 líneas.
	if h := height - 16; h > 3 {
		m.view.SetHeight(h)
	}
}

func (m *MainModel) buttonCount() int {
	return len(m.tables) + len(actions)
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tableLoadedMsg:
		m.setData(msg.data)
		return m, nil

	case ReloadTableMsg:
		if len(m.tables) == 0 {
			return m, nil
		}
		return m, m.load(m.current)

	case tea.KeyMsg:
		if msg.String() == "tab" {
			m.focusTable = !m.focusTable
			if m.focusTable {
				m.view.Focus()
			} else {
				m.view.Blur()
			}
			return m, nil
		}
		if m.focusTable {
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < m.buttonCount()-1 {
				m.cursor++
			}
		case "up", "k":
			m.cursor = m.moveVertical(-1)
		case "down", "j":
			m.cursor = m.moveVertical(1)
		case "enter", " ":
			return m, m.activate()
		case "r":
			return m, m.load(m.current)
		}
	}
	return m, nil
}

// moveVertical salta de fila en la grilla de tablas; entre acciones se mueve de a una.
func (m *MainModel) moveVertical(dir int) int {
	n := len(m.tables)
	next := m.cursor
	switch {
	case m.cursor < n:
		next = m.cursor + dir*gridColumns
		if next >= n && dir > 0 {
			next = n
		}
	case m.cursor == n && dir < 0:
		next = n - 1
	default:
		next = m.cursor + dir
	}
	if next < 0 || next >= m.buttonCount() {
		return m.cursor
	}
	return next
}

func (m *MainModel) activate() tea.Cmd {
	if m.cursor < len(m.tables) {
		return m.load(m.cursor)
	}
	var form *FormModel
	switch actions[m.cursor-len(m.tables)].id {
	case actionAdd:
		form = newAddForm(m.deps)
	case actionChangeClass:
		form = newChangeClassForm(m.deps)
	case actionFindProducts:
		form = newFindProductsForm(m.deps)
	case actionChangeParent:
		form = newChangeParentForm(m.deps)
	case actionFindChildren:
		form = newFindChildrenForm(m.deps)
	}
	return func() tea.Msg { return OpenFormMsg{Form: form} }
}

func (m *MainModel) load(idx int) tea.Cmd {
	m.current = idx
	name := m.tables[idx].Name
	deps := m.deps
	return func() tea.Msg {
		data, err := deps.Tables.List(deps.ctx(), name)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return tableLoadedMsg{data: data}
	}
}

func (m *MainModel) setData(data *dto.TableDataResponse) {
	m.data = data
	setTable(&m.view, data.Columns, data.StringRows())
}

// Current devuelve el nombre de la tabla mostrada.
func (m *MainModel) Current() string {
	if len(m.tables) == 0 {
		return ""
	}
	return m.tables[m.current].Name
}

// Data devuelve la última tabla cargada.
func (m *MainModel) Data() *dto.TableDataResponse { return m.data }

func (m *MainModel) View() string {
	st := m.deps.Styles

	var title string
	if m.data != nil {
		title = fmt.Sprintf("Clasificador de productos · %s", m.data.Title)
	} else {
		title = "Clasificador de productos"
	}

	var body string
	switch {
	case m.data == nil:
		body = st.Muted.Render("Cargando...")
	case m.data.Empty():
		body = lipgloss.JoinVertical(lipgloss.Left, m.view.View(), st.Muted.Render("La tabla está vacía."))
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.view.View(),
			st.Muted.Render(fmt.Sprintf("%d registros", m.data.Count)),
		)
	}

	help := "←/→/↑/↓ mover • enter seleccionar • tab tabla/botones • r recargar • q salir"
	return lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(title),
		m.tableButtons(),
		body,
		m.actionButtons(),
		st.Help.Render(help),
	)
}

func (m *MainModel) button(idx int, label string) string {
	st := m.deps.Styles
	switch {
	case idx == m.cursor && !m.focusTable:
		return st.ActiveButton.Render(label)
	case idx == m.current && idx < len(m.tables):
		return st.CurrentButton.Render(label)
	default:
		return st.Button.Render(label)
	}
}

func (m *MainModel) tableButtons() string {
	var rows []string
	var cells []string
	for i, t := range m.tables {
		cells = append(cells, m.button(i, t.Title))
		if len(cells) == gridColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *MainModel) actionButtons() string {
	cells := make([]string, len(actions))
	for i, a := range actions {
		cells[i] = m.button(len(m.tables)+i, a.label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// setTable reemplaza columnas y filas. Primero vacía las filas: la tabla renderiza
// al cambiar columnas y una fila más corta que las columnas nuevas no se puede dibujar.
func setTable(t *table.Model, columns []string, rows [][]string) {
	t.SetRows(nil)
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		w := lipgloss.Width(c)
		for _, r := range rows {
			if i < len(r) {
				w = max(w, lipgloss.Width(r[i]))
			}
		}
		cols[i] = table.Column{Title: c, Width: min(w, maxColumnWidth)}
	}
	t.SetColumns(cols)
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row(r)
	}
	t.SetRows(out)
	t.GotoTop()
}

func labelFor(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
