package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError aggregates per-field failures so the transport layer can
// render them as a list. It reflects client-supplied shape only, never
// account existence.
type ValidationError struct {
	Fields []fieldErrorItem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Struct failures come back
// as a *ValidationError carrying one item per offending field.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]fieldErrorItem, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fieldErrorItem{
					Field:   fieldName(fe),
					Message: fieldError(fe),
				})
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	f := fe.Field()
	return strings.ToLower(f[:1]) + f[1:]
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
