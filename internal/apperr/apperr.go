package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP mapping and logging
type Kind string

const (
	InvalidInput      Kind = "invalid_input"
	InvalidConfig     Kind = "invalid_config"
	InvalidEnum       Kind = "invalid_enum"
	SlugTaken         Kind = "slug_taken"
	InvalidTransition Kind = "invalid_transition"
	NotFound          Kind = "not_found"
	Storage           Kind = "storage"
	Internal          Kind = "internal"
)

// Error is a classified service error. All failures crossing the service
// boundary carry a Kind so the HTTP layer can map them without inspecting
// message text.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a formatted message
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a classified error that preserves the underlying cause
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or Internal for unclassified errors
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// Is reports whether err carries the given Kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps a Kind to its HTTP status code
func HTTPStatus(kind Kind) int {
	switch kind {
	case InvalidInput, InvalidConfig, InvalidEnum, SlugTaken, InvalidTransition:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
