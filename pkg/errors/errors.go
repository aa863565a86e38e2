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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CLI errors
	ErrUsage         ErrorCode = "USAGE"
	ErrUpdatesFailed ErrorCode = "UPDATES_FAILED"
	ErrInterrupted   ErrorCode = "INTERRUPTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Command errors
	ErrCommandTimeout ErrorCode = "COMMAND_TIMEOUT"
	ErrCommandFailed  ErrorCode = "COMMAND_FAILED"
	ErrCommandStart   ErrorCode = "COMMAND_START"
)

// Exit codes returned by the swman binary
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// SwmanError represents a structured error with code and details
type SwmanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SwmanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SwmanError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SwmanError carrying the same code
func (e *SwmanError) Is(target error) bool {
	var targetErr *SwmanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SwmanError with the given code and message
func New(code ErrorCode, message string) *SwmanError {
	return &SwmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SwmanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SwmanError {
	return &SwmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SwmanError
func Wrap(err error, code ErrorCode, message string) *SwmanError {
	if err == nil {
		return nil
	}
	return &SwmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SwmanError {
	if err == nil {
		return nil
	}
	return &SwmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SwmanError) WithDetail(key string, value interface{}) *SwmanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var swErr *SwmanError
	if errors.As(err, &swErr) {
		return swErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SwmanError
func GetErrorCode(err error) ErrorCode {
	var swErr *SwmanError
	if errors.As(err, &swErr) {
		return swErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SwmanError
func GetErrorDetails(err error) map[string]interface{} {
	var swErr *SwmanError
	if errors.As(err, &swErr) {
		return swErr.Details
	}
	return nil
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsErrorCode(err, ErrInterrupted) {
		return ExitInterrupted
	}
	return ExitFailure
}
