package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// accessCodeRegex matches a 6-character access code drawn from the
	// issuance alphabet (no I, O, 0, 1). Case-insensitive: the verifier
	// uppercases submitted codes before lookup, so "q7k2mn" is as valid
	// an input as "Q7K2MN".
	accessCodeRegex = regexp.MustCompile(`(?i)^[A-HJ-NP-Z2-9]{6}$`)
)

// ValidateAccessCode validates the shape of a submitted access code.
// Surrounding whitespace is tolerated here because the verifier trims it
// before lookup. Whether the code belongs to anyone is the verifier's
// business, not the binding layer's.
func ValidateAccessCode(fl validator.FieldLevel) bool {
	return accessCodeRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}
