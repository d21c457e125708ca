package levy

import (
	"net/http"

	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
)

const (
	levyNotFound     = "LEVY_NOT_FOUND"     // errInfo
	levyCapExceeded  = "LEVY_CAP_EXCEEDED"  // errInfo
	levyYearInactive = "LEVY_YEAR_INACTIVE" // errInfo
)

var (
	ErrLevyNotFound     = sharedError.NewDomainError(levyNotFound)
	ErrLevyCapExceeded  = sharedError.NewDomainError(levyCapExceeded)
	ErrLevyYearInactive = sharedError.NewDomainError(levyYearInactive)
)

func init() {
	sharedError.RegisterDomainErrorResponse(levyNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LEVY-001",
		Message: "Levy payment not found.",
	})

	sharedError.RegisterDomainErrorResponse(levyCapExceeded, sharedError.ErrorResponse{
		Status:  http.StatusUnprocessableEntity,
		Code:    "LEVY-002",
		Message: "Payment exceeds the remaining levy balance.",
	})

	sharedError.RegisterDomainErrorResponse(levyYearInactive, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LEVY-003",
		Message: "Year is not in the active levy period.",
	})
}
