package validator

import (
	"github.com/go-playground/validator/v10"
)

// levyYears is the active levy-year set, installed once at startup from
// configuration (and by testutil for tests). The ledger boundary rejects
// years outside the set instead of trusting the caller's UI.
var levyYears = map[int]bool{}

// SetLevyYears installs the active levy years used by the levyyear validator.
func SetLevyYears(years []int) {
	set := make(map[int]bool, len(years))
	for _, y := range years {
		set[y] = true
	}
	levyYears = set
}

// ValidateLevyYear validates that a year is in the active levy window.
func ValidateLevyYear(fl validator.FieldLevel) bool {
	return levyYears[int(fl.Field().Int())]
}
