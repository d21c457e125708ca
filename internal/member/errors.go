package member

import (
	"net/http"

	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"
)

const (
	memberNotFound   = "MEMBER_NOT_FOUND"     // errInfo
	memberNameTaken  = "MEMBER_NAME_TAKEN"    // errInfo
	codeSpaceExhaust = "CODE_SPACE_EXHAUSTED" // errInfo
)

var (
	ErrMemberNotFound     = sharedError.NewDomainError(memberNotFound)
	ErrMemberNameTaken    = sharedError.NewDomainError(memberNameTaken)
	ErrCodeSpaceExhausted = sharedError.NewDomainError(codeSpaceExhaust)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "Member not found.",
	})

	sharedError.RegisterDomainErrorResponse(memberNameTaken, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "A member with this name already exists.",
	})

	sharedError.RegisterDomainErrorResponse(codeSpaceExhaust, sharedError.ErrorResponse{
		Status:  http.StatusServiceUnavailable,
		Code:    "MEMBER-003",
		Message: "Could not issue a unique access code. Try again.",
	})
}
