package mediator

import (
	"fmt"

	"github.com/your-org/roster/internal/core/interfaces"
	"github.com/your-org/roster/internal/logger"
	"github.com/your-org/roster/internal/store"
	"github.com/your-org/roster/pkg/types"
)

// noSelection marks "no record loaded into the form". Store ids start at 1.
const noSelection = 0

const (
	msgSelectFirst = "Please select a student from the table first."
	msgNotFound    = "Student not found."
)

// Mediator translates user intents into validated store operations and pushes
// the resulting state back out through the output port. Every intent handler
// follows the same shape: read raw input, validate, mutate the store if valid,
// re-render from the store, report status.
//
// The mediator owns the selection state (the id of the record currently loaded
// into the edit form) and the projection of the last render, which is what
// SelectionChanged reads row fields from — never the store directly.
type Mediator struct {
	store *store.RecordStore
	out   interfaces.OutputPort

	selection int
	lastRows  []types.Row
}

var _ interfaces.InputPort = (*Mediator)(nil)

// New wires a mediator to its store and output port and performs the initial
// render so the surface starts with the full list on screen.
func New(st *store.RecordStore, out interfaces.OutputPort) *Mediator {
	m := &Mediator{
		store:     st,
		out:       out,
		selection: noSelection,
	}
	m.refresh()
	return m
}

// AddRequested validates the raw form input and appends a new student.
func (m *Mediator) AddRequested(name, email, gpa string) {
	in, verr := validateInput(name, email, gpa)
	if verr != nil {
		m.out.ShowError(verr.Message)
		return
	}

	added := m.store.Create(in.Name, in.Email, in.GPA)
	m.selection = noSelection
	m.refresh()
	m.out.ClearForm()
	m.out.SetStatus(fmt.Sprintf("Added: %s (ID: %d)", added.Name, added.ID))

	logger.Logger.Debug().Int("id", added.ID).Str("name", added.Name).Msg("student added")
}

// UpdateRequested overwrites the selected student with the validated form
// input. The stored id is never altered.
func (m *Mediator) UpdateRequested(name, email, gpa string) {
	id := m.selection
	if id == noSelection {
		m.out.ShowError(msgSelectFirst)
		return
	}

	in, verr := validateInput(name, email, gpa)
	if verr != nil {
		m.out.ShowError(verr.Message)
		return
	}

	if !m.store.Update(id, in.Name, in.Email, in.GPA) {
		// Selection pointed at a record deleted since it was loaded.
		m.out.ShowError(msgNotFound)
		return
	}

	m.refresh()
	m.out.ClearForm()
	m.out.SetStatus(fmt.Sprintf("Updated student ID: %d", id))

	logger.Logger.Debug().Int("id", id).Msg("student updated")
}

// DeleteRequested removes the selected student after an affirmative
// confirmation from the surface. Declining leaves everything untouched.
func (m *Mediator) DeleteRequested() {
	id := m.selection
	if id == noSelection {
		m.out.ShowError(msgSelectFirst)
		return
	}

	student, ok := m.store.FindByID(id)
	if !ok {
		m.out.ShowError(msgNotFound)
		return
	}

	confirmed := m.out.RequestConfirmation(
		fmt.Sprintf("Are you sure you want to delete %s?", student.Name),
	)
	if !confirmed {
		return
	}

	m.store.Delete(id)
	m.selection = noSelection
	m.refresh()
	m.out.ClearForm()
	m.out.SetStatus(fmt.Sprintf("Deleted: %s", student.Name))

	logger.Logger.Debug().Int("id", id).Str("name", student.Name).Msg("student deleted")
}

// SearchRequested renders the students whose names match the given text.
// It never mutates the store or the selection.
func (m *Mediator) SearchRequested(text string) {
	if text == "" {
		m.refresh()
		m.out.SetStatus("Showing all students")
		return
	}

	results := m.store.Search(text)
	m.render(types.RowsOf(results))
	m.out.SetStatus(fmt.Sprintf("Found %d result(s) for '%s'", len(results), text))
}

// SelectionChanged loads the highlighted row's fields into the form. The
// fields come from the last-rendered projection, so a filtered view selects
// exactly what the user sees. Out-of-range indexes are ignored.
func (m *Mediator) SelectionChanged(rowIndex int) {
	if rowIndex < 0 || rowIndex >= len(m.lastRows) {
		return
	}

	row := m.lastRows[rowIndex]
	m.selection = row.ID
	m.out.PopulateForm(row.Name, row.Email, row.GPA)
	m.out.SetStatus(fmt.Sprintf("Selected: %s (ID: %d)", row.Name, row.ID))
}

// ClearRequested resets the form and selection and shows the full list.
func (m *Mediator) ClearRequested() {
	m.selection = noSelection
	m.out.ClearForm()
	m.refresh()
	m.out.SetStatus("Ready")
}

// refresh re-reads the store and pushes list and count to the surface as one
// render step.
func (m *Mediator) refresh() {
	m.render(types.RowsOf(m.store.List()))
	m.out.SetStatus(fmt.Sprintf("Total students: %d", m.store.Count()))
}

func (m *Mediator) render(rows []types.Row) {
	m.lastRows = rows
	m.out.Render(rows)
}
