package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Screen int

const (
	MainScreen Screen = iota
	FormScreen
)

// Model raíz: pantalla principal con la tabla actual y, encima, el formulario activo.
type Model struct {
	deps          Deps
	currentScreen Screen
	mainModel     *MainModel
	formModel     *FormModel
	err           error
	notice        string
	quitting      bool
	width         int
	height        int
}

func NewModel(deps Deps) Model {
	return Model{
		deps:          deps,
		notice:        deps.Notice,
		currentScreen: MainScreen,
		mainModel:     NewMainModel(deps),
	}
}

func (m Model) Init() tea.Cmd {
	return m.mainModel.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mainModel.SetSize(msg.Width, msg.Height)
		if m.formModel != nil {
			m.formModel.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		// Cualquier tecla cierra el cuadro de error, como aceptar un diálogo.
		m.err = nil
		m.notice = ""
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			if m.currentScreen == MainScreen {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			if m.currentScreen != MainScreen {
				m.currentScreen = MainScreen
				m.formModel = nil
				return m, nil
			}
		}

	case ScreenChangeMsg:
		m.currentScreen = msg.Screen
		if msg.Screen == MainScreen {
			m.formModel = nil
		}
		return m, nil

	case OpenFormMsg:
		m.formModel = msg.Form
		m.formModel.SetSize(m.width, m.height)
		m.currentScreen = FormScreen
		return m, m.formModel.Init()

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case formDoneMsg:
		if m.currentScreen == FormScreen && m.formModel != nil && msg.form == m.formModel {
			break
		}
		// El formulario se cerró antes de que terminara el envío: el error se
		// muestra igual y, si hubo cambios, la tabla se recarga.
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.result.reload {
			return m, reloadTable
		}
		return m, nil

	case tableLoadedMsg, ReloadTableMsg:
		// La tabla principal se refresca aunque haya un formulario abierto.
		newMain, cmd := m.mainModel.Update(msg)
		m.mainModel = newMain.(*MainModel)
		return m, cmd
	}

	switch m.currentScreen {
	case MainScreen:
		newMain, cmd := m.mainModel.Update(msg)
		m.mainModel = newMain.(*MainModel)
		return m, cmd
	case FormScreen:
		if m.formModel == nil {
			m.currentScreen = MainScreen
			return m, nil
		}
		newForm, cmd := m.formModel.Update(msg)
		m.formModel = newForm.(*FormModel)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return "Hasta luego.\n"
	}

	var content string
	switch m.currentScreen {
	case MainScreen:
		content = m.mainModel.View()
	case FormScreen:
		if m.formModel != nil {
			content = m.formModel.View()
		}
	}

	if m.notice != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.deps.Styles.Muted.Render(m.notice))
	}
	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			m.deps.Styles.Error.Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}
	return content
}

// Err devuelve el error que se está mostrando (nil si no hay).
func (m Model) Err() error { return m.err }

// Notice devuelve el aviso pendiente ("" si ya se descartó).
func (m Model) Notice() string { return m.notice }

// Screen devuelve la pantalla actual.
func (m Model) Screen() Screen { return m.currentScreen }

type ScreenChangeMsg struct {
	Screen Screen
}

type ErrorMsg struct {
	Err error
}

// OpenFormMsg abre un formulario de acción.
type OpenFormMsg struct {
	Form *FormModel
}

// ReloadTableMsg vuelve a consultar la tabla que se está mostrando.
type ReloadTableMsg struct{}

func ChangeScreen(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenChangeMsg{Screen: screen}
	}
}

func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

func reloadTable() tea.Msg { return ReloadTableMsg{} }
