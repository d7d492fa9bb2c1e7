package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/your-org/roster/pkg/types"
)

// fakeIntentSink records which intents the surface dispatched.
type fakeIntentSink struct {
	adds       [][3]string
	updates    [][3]string
	deletes    int
	searches   []string
	clears     int
	selections []int
}

func (f *fakeIntentSink) AddRequested(name, email, gpa string) {
	f.adds = append(f.adds, [3]string{name, email, gpa})
}

func (f *fakeIntentSink) UpdateRequested(name, email, gpa string) {
	f.updates = append(f.updates, [3]string{name, email, gpa})
}

func (f *fakeIntentSink) DeleteRequested() { f.deletes++ }

func (f *fakeIntentSink) SearchRequested(text string) { f.searches = append(f.searches, text) }

func (f *fakeIntentSink) ClearRequested() { f.clears++ }
func (f *fakeIntentSink) SelectionChanged(rowIndex int) {
	f.selections = append(f.selections, rowIndex)
}

func newTestSurface(t *testing.T) (*Model, *fakeIntentSink) {
	t.Helper()

	m := New(false)
	sink := &fakeIntentSink{}
	m.Bind(sink)
	return m, sink
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func TestAddKeyDispatchesFormValues(t *testing.T) {
	m, sink := newTestSurface(t)

	m.inputs[focusName].SetValue("Dana")
	m.inputs[focusEmail].SetValue("dana@u.edu")
	m.inputs[focusGPA].SetValue("3.4")

	press(m, "ctrl+a")

	require.Equal(t, [][3]string{{"Dana", "dana@u.edu", "3.4"}}, sink.adds)
}

func TestUpdateAndDeleteKeys(t *testing.T) {
	m, sink := newTestSurface(t)

	press(m, "ctrl+u")
	require.Len(t, sink.updates, 1)

	press(m, "ctrl+d")
	require.Equal(t, 1, sink.deletes)
}

func TestEscClearsSearchAndDispatchesClear(t *testing.T) {
	m, sink := newTestSurface(t)
	m.search.SetValue("bob")

	press(m, "esc")

	require.Equal(t, 1, sink.clears)
	require.Empty(t, m.search.Value())
}

func TestEnterInSearchDispatchesSearch(t *testing.T) {
	m, sink := newTestSurface(t)

	m.setFocus(focusSearch)
	m.search.SetValue("alice")
	press(m, "enter")

	require.Equal(t, []string{"alice"}, sink.searches)
}

func TestArrowKeysMoveCursorAndSelect(t *testing.T) {
	m, sink := newTestSurface(t)
	m.Render([]types.Row{
		{ID: 1, Name: "Alice Johnson", Email: "alice@university.com", GPA: "3.80"},
		{ID: 2, Name: "Bob Smith", Email: "bob@university.com", GPA: "3.50"},
	})

	m.setFocus(focusTable)
	require.Equal(t, []int{0}, sink.selections)

	press(m, "down")
	require.Equal(t, []int{0, 1}, sink.selections)
	require.Equal(t, 1, m.cursor)

	// Cursor never leaves the table.
	press(m, "down")
	require.Equal(t, 1, m.cursor)

	press(m, "up")
	require.Equal(t, 0, m.cursor)
	require.Equal(t, []int{0, 1, 0}, sink.selections)
}

func TestConfirmationFlow(t *testing.T) {
	m, sink := newTestSurface(t)

	// First ask shows the prompt and declines.
	ok := m.RequestConfirmation("Are you sure you want to delete Bob Smith?")
	require.False(t, ok)
	require.NotEmpty(t, m.confirmPrompt)

	// The affirmative key arms the confirmation and re-dispatches the delete.
	press(m, "y")
	require.Equal(t, 1, sink.deletes)
	require.Empty(t, m.confirmPrompt)
	require.True(t, m.RequestConfirmation("Are you sure you want to delete Bob Smith?"))

	// A second ask is unarmed again.
	require.False(t, m.RequestConfirmation("Are you sure you want to delete Bob Smith?"))
}

func TestConfirmationDeclinedByAnyOtherKey(t *testing.T) {
	m, sink := newTestSurface(t)

	require.False(t, m.RequestConfirmation("Are you sure you want to delete Bob Smith?"))
	press(m, "n")

	require.Zero(t, sink.deletes)
	require.Empty(t, m.confirmPrompt)
	require.False(t, m.confirmArmed)
}

func TestRenderClampsCursor(t *testing.T) {
	m, _ := newTestSurface(t)
	m.Render([]types.Row{
		{ID: 1, Name: "Alice Johnson"},
		{ID: 2, Name: "Bob Smith"},
		{ID: 3, Name: "Carol Williams"},
	})
	m.cursor = 2

	m.Render([]types.Row{{ID: 1, Name: "Alice Johnson"}})
	require.Equal(t, 0, m.cursor)

	m.Render(nil)
	require.Equal(t, 0, m.cursor)
}

func TestSetStatusClearsError(t *testing.T) {
	m, _ := newTestSurface(t)

	m.ShowError("GPA must be between 0.0 and 4.0")
	require.Equal(t, "GPA must be between 0.0 and 4.0", m.errText)

	m.SetStatus("Added: Dana (ID: 1)")
	require.Empty(t, m.errText)
	require.Equal(t, "Added: Dana (ID: 1)", m.status)
}

func TestPopulateAndClearForm(t *testing.T) {
	m, _ := newTestSurface(t)

	m.PopulateForm("Bob Smith", "bob@university.com", "3.50")
	name, email, gpa := m.formValues()
	require.Equal(t, "Bob Smith", name)
	require.Equal(t, "bob@university.com", email)
	require.Equal(t, "3.50", gpa)

	m.ClearForm()
	name, email, gpa = m.formValues()
	require.Empty(t, name)
	require.Empty(t, email)
	require.Empty(t, gpa)
}

func TestViewShowsRowsAndStatus(t *testing.T) {
	m, _ := newTestSurface(t)
	m.Render([]types.Row{{ID: 1, Name: "Alice Johnson", Email: "alice@university.com", GPA: "3.80"}})
	m.SetStatus("Total students: 1")

	view := m.View()
	require.True(t, strings.Contains(view, "Alice Johnson"))
	require.True(t, strings.Contains(view, "3.80"))
	require.True(t, strings.Contains(view, "Total students: 1"))
}

func TestViewPrefersConfirmPromptOverStatus(t *testing.T) {
	m, _ := newTestSurface(t)
	m.SetStatus("Total students: 3")
	require.False(t, m.RequestConfirmation("Are you sure you want to delete Alice Johnson?"))

	view := m.View()
	require.True(t, strings.Contains(view, "Are you sure you want to delete Alice Johnson? [y/n]"))
}
