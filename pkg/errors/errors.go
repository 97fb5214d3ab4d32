// Package errors provides the coded error type shared by every stash
// component. A StashError carries a stable code, a message, the wrapped
// cause and a bag of contextual details (path, operation, call site).
package errors

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Artifact errors
	ErrSerialize     ErrorCode = "SERIALIZE"
	ErrDeserialize   ErrorCode = "DESERIALIZE"
	ErrFormatVersion ErrorCode = "FORMAT_VERSION"
	ErrCodecUnknown  ErrorCode = "CODEC_UNKNOWN"
)

// Detail keys set by WithCaller
const (
	DetailCaller   = "caller"
	DetailFunction = "function"
)

// StashError represents a structured error with code and details
type StashError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StashError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StashError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StashError) Is(target error) bool {
	var targetErr *StashError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StashError with the given code and message
func New(code ErrorCode, message string) *StashError {
	return &StashError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StashError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StashError {
	return &StashError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StashError
func Wrap(err error, code ErrorCode, message string) *StashError {
	if err == nil {
		return nil
	}
	return &StashError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StashError {
	if err == nil {
		return nil
	}
	return &StashError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StashError) WithDetail(key string, value interface{}) *StashError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *StashError) WithDetails(details map[string]interface{}) *StashError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithCaller records the call site skip frames above the caller of
// WithCaller as the "caller" (file:line) and "function" details.
// WithCaller(0) records the function that called WithCaller.
func (e *StashError) WithCaller(skip int) *StashError {
	pcs := make([]uintptr, skip+8)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for i := 0; ; i++ {
		frame, more := frames.Next()
		if i == skip {
			if frame.Function == "" {
				return e
			}
			e.WithDetail(DetailCaller, fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line))
			e.WithDetail(DetailFunction, frame.Function)
			return e
		}
		if !more {
			return e
		}
	}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stashErr *StashError
	if errors.As(err, &stashErr) {
		return stashErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StashError
func GetErrorCode(err error) ErrorCode {
	var stashErr *StashError
	if errors.As(err, &stashErr) {
		return stashErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StashError
func GetErrorDetails(err error) map[string]interface{} {
	var stashErr *StashError
	if errors.As(err, &stashErr) {
		return stashErr.Details
	}
	return nil
}
