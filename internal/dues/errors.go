package dues

import (
	"net/http"

	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
)

const (
	duesNotFound        = "DUES_NOT_FOUND"        // errInfo
	duesYearUnsupported = "DUES_YEAR_UNSUPPORTED" // errInfo
)

var (
	ErrDuesNotFound        = sharedError.NewDomainError(duesNotFound)
	ErrDuesYearUnsupported = sharedError.NewDomainError(duesYearUnsupported)
)

func init() {
	sharedError.RegisterDomainErrorResponse(duesNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "DUES-001",
		Message: "Dues record not found.",
	})

	sharedError.RegisterDomainErrorResponse(duesYearUnsupported, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "DUES-002",
		Message: "Year is outside the supported dues range.",
	})
}
