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

	// Font errors
	ErrFontNotFound ErrorCode = "FONT_NOT_FOUND"
	ErrFontInvalid  ErrorCode = "FONT_INVALID"
	ErrFontRender   ErrorCode = "FONT_RENDER"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateInvalid  ErrorCode = "TEMPLATE_INVALID"

	// Style errors
	ErrColorInvalid  ErrorCode = "COLOR_INVALID"
	ErrBorderInvalid ErrorCode = "BORDER_INVALID"
	ErrAlignInvalid  ErrorCode = "ALIGN_INVALID"

	// Export errors
	ErrFormatUnsupported ErrorCode = "FORMAT_UNSUPPORTED"
	ErrFileWrite         ErrorCode = "FILE_WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// FiggoError represents a structured error with code and details
type FiggoError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FiggoError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FiggoError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FiggoError) Is(target error) bool {
	var targetErr *FiggoError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FiggoError with the given code and message
func New(code ErrorCode, message string) *FiggoError {
	return &FiggoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FiggoError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FiggoError {
	return &FiggoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FiggoError
func Wrap(err error, code ErrorCode, message string) *FiggoError {
	if err == nil {
		return nil
	}
	return &FiggoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FiggoError {
	if err == nil {
		return nil
	}
	return &FiggoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FiggoError) WithDetail(key string, value interface{}) *FiggoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var figgoErr *FiggoError
	if errors.As(err, &figgoErr) {
		return figgoErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FiggoError
func GetErrorCode(err error) ErrorCode {
	var figgoErr *FiggoError
	if errors.As(err, &figgoErr) {
		return figgoErr.Code
	}
	return ErrUnknown
}
