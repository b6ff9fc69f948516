package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a domain error with a stable error code.
type DomainError struct {
	Code    string // Error code (e.g., "UT-PREC-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface. The cause, when present, is
// rendered after the details so lookup errors keep their list of names.
func (e *DomainError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		b.WriteString(": ")
		b.WriteString(e.Details)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
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

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Lookup Errors
// ============================================================================

var (
	// ErrPrecision indicates a precision name could not be resolved.
	ErrPrecision = NewDomainError("UT-PREC-4000", "wrong precision")

	// ErrPreset indicates a preset name could not be resolved.
	ErrPreset = NewDomainError("UT-PRST-4000", "wrong preset")
)

// ============================================================================
// Timestamp Errors
// ============================================================================

var (
	// ErrWrongTimestamp indicates the timestamp token is not a 64-bit integer.
	ErrWrongTimestamp = NewDomainError("UT-TS-4000", "wrong timestamp")

	// ErrTimestampOutOfRange indicates the instant falls outside years 0001..9999.
	ErrTimestampOutOfRange = NewDomainError("UT-TS-4001", "timestamp out of range")
)

// ============================================================================
// Environment Errors
// ============================================================================

var (
	// ErrTimezone indicates an unknown timezone name.
	ErrTimezone = NewDomainError("UT-TZ-4000", "unknown timezone")

	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = NewDomainError("UT-CONF-4000", "invalid configuration")
)
