package fines

import (
	"net/http"

	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
)

const (
	fineNotFound = "FINE_NOT_FOUND" // errInfo
)

var (
	ErrFineNotFound = sharedError.NewDomainError(fineNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(fineNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "FINE-001",
		Message: "Fine not found.",
	})
}
