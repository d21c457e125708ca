package auth

import (
	"net/http"

	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
)

const (
	invalidAccessCode = "INVALID_ACCESS_CODE" // errInfo
)

var (
	ErrInvalidAccessCode = sharedError.NewDomainError(invalidAccessCode)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidAccessCode, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "Invalid access code.",
	})
}
