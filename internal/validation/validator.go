// Package validation wraps validator/v10 for checking catalog records
// before they are written into artifacts.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with JSON field naming.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our domain.
func New() *Validator {
	v := validator.New()

	// Use JSON tag names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		name, _, _ = strings.Cut(name, ",")
		return name
	})

	return &Validator{v: v}
}

// Validate validates a struct, flattening field errors into one message.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", e.Field(), e.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
