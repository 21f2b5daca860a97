package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the failure kinds the store can signal
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Load errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileEmpty    ErrorCode = "FILE_EMPTY"
	ErrParse        ErrorCode = "PARSE"

	// Persist errors
	ErrStore ErrorCode = "STORE"

	// Argument validation errors
	ErrNullKey     ErrorCode = "NULL_KEY"
	ErrNullSection ErrorCode = "NULL_SECTION"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// PropError represents a structured error with code and details
type PropError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PropError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PropError) Unwrap() error {
	return e.Wrapped
}

// Is matches two PropErrors by code
func (e *PropError) Is(target error) bool {
	var targetErr *PropError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PropError with the given code and message
func New(code ErrorCode, message string) *PropError {
	return &PropError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PropError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PropError {
	return &PropError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PropError
func Wrap(err error, code ErrorCode, message string) *PropError {
	if err == nil {
		return nil
	}
	return &PropError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PropError {
	if err == nil {
		return nil
	}
	return &PropError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PropError) WithDetail(key string, value interface{}) *PropError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var propErr *PropError
	if errors.As(err, &propErr) {
		return propErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PropError
func GetErrorCode(err error) ErrorCode {
	var propErr *PropError
	if errors.As(err, &propErr) {
		return propErr.Code
	}
	return ErrUnknown
}
