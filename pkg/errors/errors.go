// Package errors defines the coded errors flierkit returns from the layout
// core, the pipeline and the generation client.
//
// A code says what kind of failure happened; the message says what to tell
// the user. The CLI prints [UserMessage], the HTTP API returns the code and
// message as JSON and picks the status from the code:
//
//	INVALID_*                    bad request or degenerate layout geometry (400)
//	MISSING_TRANSLATION          diagnostic only, never returned
//	UPSTREAM_GENERATION_FAILURE  the generation service failed (502)
//	NETWORK_ERROR, TIMEOUT       transport failures under an upstream error
//	INTERNAL_ERROR               anything else (500)
//
// Usage:
//
//	err := errors.New(errors.ErrCodeInvalidLayoutParameter, "font size must be positive, got %g", size)
//	err = errors.Wrap(errors.ErrCodeUpstreamGeneration, err, "generate flier %q", title)
//	errors.Is(err, errors.ErrCodeUpstreamGeneration)  // true, outermost code
//	errors.HasCode(err, errors.ErrCodeInvalidLayoutParameter) // true, anywhere in the chain
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput           Code = "INVALID_INPUT"
	ErrCodeInvalidElement         Code = "INVALID_ELEMENT"
	ErrCodeInvalidFormat          Code = "INVALID_FORMAT"
	ErrCodeInvalidLayoutParameter Code = "INVALID_LAYOUT_PARAMETER"

	ErrCodeMissingTranslation Code = "MISSING_TRANSLATION"

	ErrCodeUpstreamGeneration Code = "UPSTREAM_GENERATION_FAILURE"
	ErrCodeNetwork            Code = "NETWORK_ERROR"
	ErrCodeTimeout            Code = "TIMEOUT"
	ErrCodeNotFound           Code = "NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// HasCode reports whether any *Error in err's chain has code. An upstream
// failure caused by a timeout has both codes.
func HasCode(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the outermost code in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the outermost message without its code, or err's text
// for uncoded errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err's outermost code is one of the INVALID_*
// codes, meaning the caller sent something flierkit cannot lay out.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidElement, ErrCodeInvalidFormat, ErrCodeInvalidLayoutParameter:
		return true
	}
	return false
}
