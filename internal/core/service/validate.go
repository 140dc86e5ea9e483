package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

// newValidator builds the validator shared by the services. The notblank tag
// rejects whitespace-only strings, which plain "required" lets through.
func newValidator() *validator.Validate {
	v := validator.New()
	// NotBlank never returns an error for string fields.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// checkInput runs struct validation and converts the first failure into a
// display-ready validation error. Returns nil when the input is valid.
func checkInput(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return domain.NewValidation("%s", fieldError(ve[0]))
	}
	return domain.NewValidation("invalid input")
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " cannot be empty"
	case "email":
		return field + " is not a valid email"
	case "gte":
		return field + " cannot be negative"
	case "gt":
		return "invalid " + field
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// fieldName renders a struct field name the way the UI talks about it.
func fieldName(s string) string {
	switch s {
	case "ID":
		return "id"
	case "FullName":
		return "full name"
	default:
		return strings.ToLower(s)
	}
}
