package error

import (
	"errors"
	"net/http"
)

type DomainError interface {
	error // Embed standard error interface
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string {
	return e.errInfo
}

func (e *domainSentinel) Info() string {
	return e.errInfo
}

// ErrorResponse is the JSON response structure for errors.
// Details carries operation-specific values the caller needs to render a
// message (e.g. the remaining levy allowance on a cap rejection).
type ErrorResponse struct {
	Status  int            `json:"status"`
	Code    string         `json:"code"`
	Message string         `json:"message"` // client message
	Details map[string]any `json:"details,omitempty"`
}

// WithDetails returns a copy of the response carrying the given details.
func (r ErrorResponse) WithDetails(details map[string]any) ErrorResponse {
	r.Details = details
	return r
}

// Common errors
var (
	domainErrorResponses = map[string]ErrorResponse{}

	// ValidationFailed indicates the request payload failed validation
	ValidationFailed = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001", // METHOD_ARGUMENT_NOT_VALID
		Message: "Invalid request.",
	}

	// InvalidRequest indicates the request format is invalid (e.g., JSON parsing error)
	InvalidRequest = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-002", // INVALID_REQUEST
		Message: "Malformed request body.",
	}

	// InternalServerError indicates an unexpected server error
	InternalServerError = ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "ERROR-003", // INTERNAL_SERVER_ERROR
		Message: "An internal error occurred.",
	}
)

// NewDomainError creates a sentinel error that can participate in error chains.
func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// detailedError decorates a domain sentinel with per-occurrence details
// computed at the failure site (the sentinel itself stays a shared singleton).
type detailedError struct {
	base    DomainError
	details map[string]any
}

func (e *detailedError) Error() string {
	return e.base.Error()
}

func (e *detailedError) Unwrap() error {
	return e.base
}

// WithErrorDetails wraps a domain error so that ResolveDomainError returns a
// response carrying the given details.
func WithErrorDetails(base DomainError, details map[string]any) error {
	return &detailedError{base: base, details: details}
}

// RegisterDomainErrorResponse registers a mapping between a domain error errInfo and a shared error response.
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError converts a domain error into a shared error response if a mapping exists.
func ResolveDomainError(err error) (ErrorResponse, bool) {
	if err == nil {
		return ErrorResponse{}, false
	}

	var domainErr DomainError
	if errors.As(err, &domainErr) {
		if resp, ok := domainErrorResponses[domainErr.Info()]; ok {
			var detailed *detailedError
			if errors.As(err, &detailed) {
				resp = resp.WithDetails(detailed.details)
			}
			return resp, true
		}
	}
	return ErrorResponse{}, false
}
