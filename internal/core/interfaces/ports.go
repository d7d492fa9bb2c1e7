// roster/internal/core/interfaces/ports.go
package interfaces

import "github.com/your-org/roster/pkg/types"

// InputPort is the set of user intents the mediator accepts from a
// presentation surface. All fields arrive as raw text except the row index.
// The surface must deliver one intent at a time; each handler runs to
// completion before the next is accepted.
type InputPort interface {
	AddRequested(name, email, gpa string)
	UpdateRequested(name, email, gpa string)
	DeleteRequested()
	SearchRequested(text string)
	ClearRequested()
	SelectionChanged(rowIndex int)
}

// OutputPort is everything the mediator pushes back to a presentation
// surface. RequestConfirmation is synchronous: the current intent handler
// blocks until the surface answers.
type OutputPort interface {
	Render(rows []types.Row)
	SetStatus(text string)
	ShowError(text string)
	ShowInfo(text string)
	RequestConfirmation(text string) bool
	PopulateForm(name, email, gpa string)
	ClearForm()
}
