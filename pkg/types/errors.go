package types

import "errors"

// ValidationKind distinguishes the user-facing validation failures. A parse
// failure and an out-of-range value abort the same way but carry different
// messages, so they stay separate kinds.
type ValidationKind string

const (
	ValidationMissingFields ValidationKind = "missing_fields"
	ValidationNotANumber    ValidationKind = "not_a_number"
	ValidationOutOfRange    ValidationKind = "out_of_range"
)

// ValidationError reports rejected form input. Message is the exact text shown
// to the user.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Sentinel errors for the non-validation failure modes. Both are recoverable
// user-visible state drift, never fatal.
var (
	ErrNotFound    = errors.New("student not found")
	ErrNoSelection = errors.New("no student selected")
)
