package admin

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validationMessage turns the first validation error into a client message.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
	}

	return "Invalid request body"
}
