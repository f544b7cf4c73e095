// Package errors provides coded errors for modorder.
//
// Codes are stable strings so callers and tests can match on the category of
// a failure without parsing messages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Catalog and order errors
	ErrMalformedVersion    ErrorCode = "MALFORMED_VERSION"
	ErrUnresolvedReference ErrorCode = "UNRESOLVED_REFERENCE"
	ErrDuplicateIdentity   ErrorCode = "DUPLICATE_IDENTITY"
	ErrInvalidOrder        ErrorCode = "INVALID_ORDER"
	ErrMissingIdentity     ErrorCode = "MISSING_IDENTITY"
	ErrOrderNotFound       ErrorCode = "ORDER_NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Input errors
	ErrSourceLoad    ErrorCode = "SOURCE_LOAD"
	ErrSourceParse   ErrorCode = "SOURCE_PARSE"
	ErrSettingsParse ErrorCode = "SETTINGS_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// ModorderError represents a structured error with code and details
type ModorderError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModorderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModorderError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a ModorderError with the same code
func (e *ModorderError) Is(target error) bool {
	var targetErr *ModorderError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModorderError with the given code and message
func New(code ErrorCode, message string) *ModorderError {
	return &ModorderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModorderError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModorderError {
	return &ModorderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModorderError
func Wrap(err error, code ErrorCode, message string) *ModorderError {
	if err == nil {
		return nil
	}
	return &ModorderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModorderError {
	if err == nil {
		return nil
	}
	return &ModorderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModorderError) WithDetail(key string, value interface{}) *ModorderError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var modErr *ModorderError
	if errors.As(err, &modErr) {
		return modErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ModorderError
func GetErrorCode(err error) ErrorCode {
	var modErr *ModorderError
	if errors.As(err, &modErr) {
		return modErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ModorderError
func GetErrorDetails(err error) map[string]interface{} {
	var modErr *ModorderError
	if errors.As(err, &modErr) {
		return modErr.Details
	}
	return nil
}
