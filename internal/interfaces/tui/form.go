package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/clasificador/internal/application/dto"
)

// formResult lo que muestra un formulario tras enviarse: un mensaje y,
// para las búsquedas, una tabla de resultados.
type formResult struct {
	message string
	columns []string
	rows    [][]string
	reload  bool // la operación modificó datos: refrescar la tabla principal
}

type submitFunc func(ctx context.Context, table string, values map[string]string) (formResult, error)

type formDoneMsg struct {
	form   *FormModel
	result formResult
	err    error
}

type formField struct {
	name  string
	input textinput.Model
}

// FormModel formulario de una acción: selector de tabla opcional, campos de texto,
// envío con enter y resultado o error en un cuadro.
type FormModel struct {
	title     string
	submitTxt string
	deps      Deps

	tables    []dto.TableInfo // no vacío: el formulario tiene selector de tabla
	tableIdx  int
	fieldsFor func(table string) ([]string, error)

	fields  []formField
	focus   int // con selector, 0 es el selector
	submit  submitFunc
	running bool

	result  *formResult
	err     error
	results table.Model

	width  int
	height int
}

func newForm(deps Deps, title string, fields []string, submit submitFunc) *FormModel {
	f := &FormModel{
		title:     title,
		submitTxt: "Aceptar",
		deps:      deps,
		submit:    submit,
		results: table.New(
			table.WithHeight(8),
			table.WithStyles(deps.Styles.Table),
		),
	}
	f.setFields(fields)
	return f
}

func (f *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (f *FormModel) SetSize(width, height int) {
	f.width = width
	f.height = height
}

func (f *FormModel) hasSelector() bool { return len(f.tables) > 0 }

func (f *FormModel) focusCount() int {
	n := len(f.fields)
	if f.hasSelector() {
		n++
	}
	return n
}

// fieldIndex traduce el foco a índice de campo (-1 si el foco está en el selector).
func (f *FormModel) fieldIndex() int {
	if f.hasSelector() {
		return f.focus - 1
	}
	return f.focus
}

func (f *FormModel) setFields(names []string) {
	f.fields = make([]formField, len(names))
	for i, name := range names {
		in := textinput.New()
		in.Placeholder = name
		in.CharLimit = 256
		in.Prompt = "› "
		f.fields[i] = formField{name: name, input: in}
	}
	f.focus = 0
	f.updateFocus()
}

func (f *FormModel) updateFocus() {
	idx := f.fieldIndex()
	for i := range f.fields {
		if i == idx {
			f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
}

// Table devuelve la tabla elegida en el selector ("" si no hay selector).
func (f *FormModel) Table() string {
	if !f.hasSelector() {
		return ""
	}
	return f.tables[f.tableIdx].Name
}

// Fields devuelve los nombres de los campos actuales, en orden.
func (f *FormModel) Fields() []string {
	names := make([]string, len(f.fields))
	for i, fl := range f.fields {
		names[i] = fl.name
	}
	return names
}

// Message devuelve el mensaje del último envío exitoso.
func (f *FormModel) Message() string {
	if f.result == nil {
		return ""
	}
	return f.result.message
}

// Err devuelve el error del último envío.
func (f *FormModel) Err() error { return f.err }

func (f *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formDoneMsg:
		if msg.form != f {
			return f, nil
		}
		f.running = false
		if msg.err != nil {
			f.err = msg.err
			f.result = nil
			return f, nil
		}
		f.err = nil
		res := msg.result
		f.result = &res
		setTable(&f.results, res.columns, res.rows)
		if res.reload {
			return f, reloadTable
		}
		return f, nil

	case tea.KeyMsg:
		if f.running {
			return f, nil
		}
		switch msg.String() {
		case "tab", "down":
			f.focus = (f.focus + 1) % max(f.focusCount(), 1)
			f.updateFocus()
			return f, nil
		case "shift+tab", "up":
			n := max(f.focusCount(), 1)
			f.focus = (f.focus - 1 + n) % n
			f.updateFocus()
			return f, nil
		case "enter":
			return f, f.doSubmit()
		case "left", "right":
			if f.hasSelector() && f.focus == 0 {
				f.cycleTable(msg.String() == "right")
				return f, nil
			}
		case "pgup", "pgdown":
			var cmd tea.Cmd
			f.results, cmd = f.results.Update(msg)
			return f, cmd
		}

		idx := f.fieldIndex()
		if idx < 0 || idx >= len(f.fields) {
			return f, nil
		}
		var cmd tea.Cmd
		f.fields[idx].input, cmd = f.fields[idx].input.Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f *FormModel) cycleTable(forward bool) {
	n := len(f.tables)
	if forward {
		f.tableIdx = (f.tableIdx + 1) % n
	} else {
		f.tableIdx = (f.tableIdx - 1 + n) % n
	}
	names, err := f.fieldsFor(f.Table())
	if err != nil {
		f.err = err
		return
	}
	f.err = nil
	f.result = nil
	f.setFields(names)
}

func (f *FormModel) values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		out[fl.name] = strings.TrimSpace(fl.input.Value())
	}
	return out
}

func (f *FormModel) doSubmit() tea.Cmd {
	f.running = true
	form := f
	table := f.Table()
	values := f.values()
	submit := f.submit
	ctx := f.deps.ctx()
	return func() tea.Msg {
		res, err := submit(ctx, table, values)
		return formDoneMsg{form: form, result: res, err: err}
	}
}

func (f *FormModel) View() string {
	st := f.deps.Styles
	var lines []string

	if f.hasSelector() {
		sel := make([]string, len(f.tables))
		for i, t := range f.tables {
			label := t.Name
			if i == f.tableIdx {
				label = "[" + label + "]"
			}
			sel[i] = label
		}
		prefix := "  "
		if f.focus == 0 {
			prefix = "› "
		}
		lines = append(lines,
			st.Label.Render("Tabla"),
			prefix+"◀ "+strings.Join(sel, "  ")+" ▶",
			"",
		)
	}

	for _, fl := range f.fields {
		lines = append(lines, st.Label.Render(labelFor(fl.name)), fl.input.View(), "")
	}

	status := st.Muted.Render(f.submitTxt + " con enter")
	if f.running {
		status = st.Muted.Render("Procesando...")
	}
	lines = append(lines, status)

	formWidth := 0
	if f.width > 8 {
		formWidth = min(f.width-4, 72)
	}
	box := st.Form.Width(formWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	parts := []string{st.Title.Render(f.title), box}
	if f.err != nil {
		parts = append(parts, st.Error.Render("Error: "+f.err.Error()))
	}
	if f.result != nil {
		if f.result.message != "" {
			parts = append(parts, st.Success.Render(f.result.message))
		}
		if len(f.result.rows) > 0 {
			parts = append(parts, f.results.View())
		}
	}
	help := "tab/↑/↓ cambiar campo • enter " + strings.ToLower(f.submitTxt) + " • esc volver"
	if f.hasSelector() {
		help = "←/→ elegir tabla • " + help
	}
	parts = append(parts, st.Help.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
