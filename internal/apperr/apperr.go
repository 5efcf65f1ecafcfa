// Package apperr defines the operational error type carried from services to
// the HTTP layer. An operational error is an anticipated failure (not found,
// bad input, store unavailable) with a status code and a client-safe message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Wrap attaches status, code and message to err. The wrapped error stays
// reachable through errors.Is / errors.As but is never shown to clients.
func Wrap(err error, status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: err}
}

func NotFound(code, message string) *Error {
	return New(http.StatusNotFound, code, message)
}

func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

func Internal(err error, code, message string) *Error {
	return Wrap(err, http.StatusInternalServerError, code, message)
}

// As returns the operational error in err's chain, if any.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// StatusOf reports the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	if ae, ok := As(err); ok && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}
