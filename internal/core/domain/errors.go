package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error
// code. Codes follow the format CK-<AREA>-<NNNN>, where the numeric part
// hints at the HTTP status class.
type DomainError struct {
	Code    string // Error code (e.g., "CK-CRED-5001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison by code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Credential errors (CRED). Configuration defects: fatal, never retried.
var (
	// ErrCredentialsMissing indicates the application id or secret is absent.
	ErrCredentialsMissing = NewDomainError("CK-CRED-5001", "application credentials not configured")

	// ErrCredentialsInvalid indicates the application id or secret has the
	// wrong length.
	ErrCredentialsInvalid = NewDomainError("CK-CRED-5002", "application credentials malformed")
)

// Token issuance errors (TOKN).
var (
	// ErrFieldOverflow indicates a caller-supplied field exceeds the
	// 16-bit wire length budget.
	ErrFieldOverflow = NewDomainError("CK-TOKN-4001", "field exceeds wire length budget")

	// ErrUnknownRole indicates an unrecognized channel role.
	ErrUnknownRole = NewDomainError("CK-TOKN-4002", "unknown channel role")

	// ErrUnknownFormat indicates an unrecognized token format selection.
	ErrUnknownFormat = NewDomainError("CK-TOKN-5003", "unknown token format")
)

// Authentication errors (AUTH).
var (
	// ErrAPIKeyMissing indicates no API key was provided.
	ErrAPIKeyMissing = NewDomainError("CK-AUTH-4010", "api key not provided")

	// ErrAPIKeyInvalid indicates the API key does not match.
	ErrAPIKeyInvalid = NewDomainError("CK-AUTH-4011", "invalid api key")
)

// System errors (SYS).
var (
	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("CK-SYS-5000", "internal server error")

	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = NewDomainError("CK-SYS-4000", "bad request")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError("CK-SYS-4290", "too many requests")
)

// Argument errors (ARG).
var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("CK-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("CK-ARG-1002", "missing required argument")
)
