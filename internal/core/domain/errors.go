// Package domain defines the core domain models for makeboot.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
// Codes have the form MB-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "MB-TOKEN-4000")
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
// Token Errors (TOKEN)
// ============================================================================

var (
	// ErrInvalidByteLength indicates a token is not exactly two characters long.
	ErrInvalidByteLength = NewDomainError("MB-TOKEN-4000", "invalid byte")

	// ErrInvalidHexDigit indicates a two-character token is not a hex byte.
	ErrInvalidHexDigit = NewDomainError("MB-TOKEN-4001", "not a hex byte")
)

// ============================================================================
// Image Errors (IMAGE)
// ============================================================================

var (
	// ErrSizeMismatch indicates the assembled image is not exactly one sector.
	ErrSizeMismatch = NewDomainError("MB-IMAGE-4002", "final size != 512 bytes")

	// ErrNotBootable indicates an image fails the boot sector checks.
	ErrNotBootable = NewDomainError("MB-IMAGE-4004", "image is not bootable")
)

// ============================================================================
// CLI and System Errors (CLI, IO)
// ============================================================================

var (
	// ErrUsage indicates the command was invoked without any byte tokens.
	ErrUsage = NewDomainError("MB-CLI-4003", "no byte tokens supplied")

	// ErrIO indicates a file system operation failed.
	ErrIO = NewDomainError("MB-IO-5000", "i/o error")
)
