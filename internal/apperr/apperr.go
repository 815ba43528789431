// Package apperr classifies failures from the document service into the
// fixed set of error kinds the site presents.
package apperr

import (
	"errors"
	"fmt"
)

// Code is one of the five internal error kinds.
type Code string

const (
	NotFound             Code = "NOT_FOUND"
	ExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	InvalidRequest       Code = "INVALID_REQUEST"
	InternalError        Code = "INTERNAL_ERROR"
	RateLimited          Code = "RATE_LIMITED"
)

var messages = map[Code]string{
	NotFound:             "The requested content could not be found",
	ExternalServiceError: "The content service could not be reached",
	InvalidRequest:       "The request is invalid",
	InternalError:        "A server error occurred",
	RateLimited:          "Too many requests, please try again shortly",
}

const (
	fallbackMessage   = "An unknown error occurred"
	unexpectedMessage = "An unexpected error occurred"
)

// Message returns the user-facing message for a code.
func Message(code Code) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return messages[InternalError]
}

// Error is a classified failure.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Err     error          `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind with the standard message.
func New(code Code, err error) *Error {
	return &Error{Code: code, Message: Message(code), Err: err}
}

// CodeOf returns the code of a classified error anywhere in err's chain,
// or InternalError.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return InternalError
}

// IsNotFound reports whether err was classified as NOT_FOUND.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == NotFound
}
