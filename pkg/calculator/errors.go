// Package calculator implements the personal-finance calculators. Every
// calculator is a pure function from a typed input to a numeric result;
// formatting for display happens elsewhere.
package calculator

import (
	"errors"
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// ErrValidation is matched by every error a calculator returns.
var ErrValidation = errors.New(constants.ValidationMessage)

// ValidationError describes which input was rejected and why. The detail is
// meant for logs; users only ever see ErrValidation's message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError reports a rejected field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func invalid(field, reason string) error {
	return NewValidationError(field, reason)
}

type namedValue struct {
	name  string
	value float64
}

// requireFinite reports the first non-finite field in order.
func requireFinite(fields []namedValue) error {
	for _, f := range fields {
		if !mathutil.IsFinite(f.value) {
			return invalid(f.name, "not a finite number")
		}
	}
	return nil
}
