package mediator

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/your-org/roster/pkg/types"
)

const (
	msgAllFields = "Please fill in all fields."
	msgBadNumber = "GPA must be a valid number (e.g., 3.75)"
	msgGPARange  = "GPA must be between 0.0 and 4.0"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// rawInput is the form exactly as typed. All three fields must be present
// before any parsing happens.
type rawInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
	GPA   string `validate:"required"`
}

// studentInput is the parsed, range-checked form.
type studentInput struct {
	Name  string
	Email string
	GPA   float64 `validate:"gte=0,lte=4"`
}

// validateInput applies the fixed validation order: emptiness, then numeric
// parse, then range. The parse step stays outside the validator so the two
// failure kinds keep their distinct user-facing messages.
func validateInput(name, email, gpaText string) (studentInput, *types.ValidationError) {
	if err := validate.Struct(rawInput{Name: name, Email: email, GPA: gpaText}); err != nil {
		return studentInput{}, &types.ValidationError{
			Kind:    types.ValidationMissingFields,
			Message: msgAllFields,
		}
	}

	gpa, err := strconv.ParseFloat(gpaText, 64)
	if err != nil {
		return studentInput{}, &types.ValidationError{
			Kind:    types.ValidationNotANumber,
			Message: msgBadNumber,
		}
	}

	in := studentInput{Name: name, Email: email, GPA: gpa}
	if err := validate.Struct(in); err != nil {
		return studentInput{}, &types.ValidationError{
			Kind:    types.ValidationOutOfRange,
			Message: msgGPARange,
		}
	}

	return in, nil
}
