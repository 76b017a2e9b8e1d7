// Package errors defines vargen's error taxonomy. Every failure mode of
// the pipeline (reading and validating descriptors, resolving filter
// tokens, materializing variants, running post-generation commands) maps
// to a stable ErrorCode so callers and tests can match on the category
// with errors.Is instead of on message text.
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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Descriptor errors
	ErrConfigRead  ErrorCode = "CONFIG_READ"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Filter errors
	ErrUnknownFilter ErrorCode = "UNKNOWN_FILTER"
	ErrEmptyResult   ErrorCode = "EMPTY_RESULT"

	// Generation errors
	ErrMaterialize ErrorCode = "MATERIALIZE"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrDirRemove   ErrorCode = "DIR_REMOVE"

	// Post-generation errors
	ErrExecute ErrorCode = "EXECUTE"
)

// VargenError represents a structured error with code and details
type VargenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VargenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VargenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *VargenError) Is(target error) bool {
	var targetErr *VargenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VargenError with the given code and message
func New(code ErrorCode, message string) *VargenError {
	return &VargenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VargenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VargenError {
	return &VargenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VargenError
func Wrap(err error, code ErrorCode, message string) *VargenError {
	if err == nil {
		return nil
	}
	return &VargenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VargenError {
	if err == nil {
		return nil
	}
	return &VargenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VargenError) WithDetail(key string, value interface{}) *VargenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var vErr *VargenError
	if errors.As(err, &vErr) {
		return vErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a VargenError
func GetErrorCode(err error) ErrorCode {
	var vErr *VargenError
	if errors.As(err, &vErr) {
		return vErr.Code
	}
	return ErrUnknown
}
