// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"feira/internal/domain/patch"
	"feira/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError names one rejected request field by its JSON or query name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator. Partial-update fields are validated by their
// carried value, so `omitempty,email` skips absent and null keys.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	validate.RegisterCustomTypeFunc(patchValue[string], patch.Field[string]{})
	validate.RegisterCustomTypeFunc(patchValue[float64], patch.Field[float64]{})

	return &CustomValidator{validate: validate}
}

func patchValue[T any](field reflect.Value) any {
	f, ok := field.Interface().(patch.Field[T])
	if !ok {
		return nil
	}

	if v, ok := f.Get(); ok {
		return v
	}

	return nil
}

// Validate runs the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validate.Struct(i))
}

// Details flattens a validation failure for the error envelope. Errors that
// did not come from the validator yield nil.
func Details(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return details
}
