package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateNotBlank rejects strings that are empty once trimmed. Plain
// min/required count raw characters, so "   " would otherwise slip through
// and be stored as an empty value after the service trims it.
func ValidateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
