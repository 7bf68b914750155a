// Package validation wraps go-playground/validator so handlers can map
// struct tag failures onto the API's fixed, human-readable field messages.
package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages maps "Field.tag" (e.g. "Email.required") to the detail
// message reported for that failure.
type Messages map[string]string

type Error struct {
	Details []string
}

func (e *Error) Error() string {
	return strings.Join(e.Details, ", ")
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Struct validates s and returns a *Error listing one message per failed
// field, in declaration order. Fields without a configured message fall
// back to the validator's default wording.
func (v *Validator) Struct(s interface{}, msgs Messages) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
			details = append(details, msg)
			continue
		}
		details = append(details, fe.Error())
	}

	return &Error{Details: details}
}
