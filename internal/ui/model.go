package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/your-org/roster/internal/core/interfaces"
	"github.com/your-org/roster/pkg/types"
)

type focusArea int

const (
	focusName focusArea = iota
	focusEmail
	focusGPA
	focusSearch
	focusTable
	focusAreaCount
)

// Model is the terminal presentation surface: a form, a search box, the
// student table, and a status bar. It implements the mediator's OutputPort
// and delivers intents to the mediator one at a time from its Update loop,
// so each intent handler runs to completion before the next key is processed.
type Model struct {
	input interfaces.InputPort

	inputs []textinput.Model // name, email, gpa
	search textinput.Model
	focus  focusArea

	rows   []types.Row
	cursor int

	status  string
	errText string
	info    string

	// Delete confirmation. RequestConfirmation cannot block a terminal event
	// loop, so the first ask records the prompt and answers "no"; pressing y
	// arms the confirmation and re-dispatches the delete, which then gets an
	// immediate "yes". The store only ever mutates after the affirmative key.
	confirmPrompt string
	confirmArmed  bool

	styles   styles
	width    int
	height   int
	quitting bool
}

var (
	_ tea.Model             = (*Model)(nil)
	_ interfaces.OutputPort = (*Model)(nil)
)

// New builds the surface. Bind must be called with the mediator before the
// program runs.
func New(useColor bool) *Model {
	labels := []struct {
		placeholder string
		limit       int
	}{
		{"Full name", 64},
		{"Email address", 64},
		{"GPA (0.0 - 4.0)", 8},
	}

	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		in.CharLimit = l.limit
		in.Width = 32
		inputs[i] = in
	}
	inputs[focusName].Focus()

	search := textinput.New()
	search.Placeholder = "Search by name"
	search.CharLimit = 64
	search.Width = 32

	return &Model{
		inputs: inputs,
		search: search,
		focus:  focusName,
		styles: newStyles(useColor),
		status: "Ready",
	}
}

// Bind attaches the intent sink. Separate from New because the mediator needs
// the surface (as its output port) before the surface needs the mediator.
func (m *Model) Bind(input interfaces.InputPort) {
	m.input = input
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateInputs(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmPrompt != "" {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "q":
		if m.focus == focusTable {
			m.quitting = true
			return m, tea.Quit
		}

	case "tab":
		m.setFocus((m.focus + 1) % focusAreaCount)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + focusAreaCount - 1) % focusAreaCount)
		return m, nil

	case "down":
		if m.focus == focusTable {
			m.moveCursor(1)
			return m, nil
		}

	case "up":
		if m.focus == focusTable {
			m.moveCursor(-1)
			return m, nil
		}

	case "enter":
		switch m.focus {
		case focusSearch:
			m.input.SearchRequested(m.search.Value())
		case focusTable:
			m.input.SelectionChanged(m.cursor)
		default:
			m.setFocus(m.focus + 1)
		}
		return m, nil

	case "ctrl+a":
		m.input.AddRequested(m.formValues())
		return m, nil

	case "ctrl+u":
		m.input.UpdateRequested(m.formValues())
		return m, nil

	case "ctrl+d":
		m.input.DeleteRequested()
		return m, nil

	case "esc":
		m.search.SetValue("")
		m.input.ClearRequested()
		return m, nil
	}

	return m, m.updateInputs(msg)
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmPrompt = ""
		m.confirmArmed = true
		m.input.DeleteRequested()
	default:
		// Anything else declines; nothing was mutated.
		m.confirmPrompt = ""
	}
	return m, nil
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *Model) setFocus(area focusArea) {
	m.focus = area
	for i := range m.inputs {
		if focusArea(i) == area {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if area == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
	if area == focusTable && len(m.rows) > 0 {
		m.input.SelectionChanged(m.cursor)
	}
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.rows) {
		return
	}
	m.cursor = next
	m.input.SelectionChanged(m.cursor)
}

func (m *Model) formValues() (name, email, gpa string) {
	return m.inputs[focusName].Value(), m.inputs[focusEmail].Value(), m.inputs[focusGPA].Value()
}

// ── OutputPort ──

// Render replaces the visible table rows and keeps the cursor in range.
func (m *Model) Render(rows []types.Row) {
	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetStatus replaces the status line and clears any stale error.
func (m *Model) SetStatus(text string) {
	m.status = text
	m.errText = ""
}

func (m *Model) ShowError(text string) {
	m.errText = text
}

func (m *Model) ShowInfo(text string) {
	m.info = text
}

// RequestConfirmation answers an armed confirmation immediately; otherwise it
// shows the prompt and declines, leaving the affirmative key to re-dispatch.
func (m *Model) RequestConfirmation(text string) bool {
	if m.confirmArmed {
		m.confirmArmed = false
		return true
	}
	m.confirmPrompt = text
	return false
}

func (m *Model) PopulateForm(name, email, gpa string) {
	m.inputs[focusName].SetValue(name)
	m.inputs[focusEmail].SetValue(email)
	m.inputs[focusGPA].SetValue(gpa)
}

func (m *Model) ClearForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
}
