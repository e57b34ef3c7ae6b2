package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"helpdesk/internal/shared/errors"
)

// BindingError converts a gin binding failure into a validation error with
// per-field detail when the underlying cause is a validator rule violation.
func BindingError(err error) *errors.AppError {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			detail := fe.Field() + " failed '" + fe.Tag() + "' validation"
			if fe.Param() != "" {
				detail += " (param: " + fe.Param() + ")"
			}
			details = append(details, detail)
		}
		return errors.NewValidationError("invalid request body", strings.Join(details, "; "))
	}

	return errors.NewValidationError("invalid request body")
}
