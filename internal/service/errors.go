package service

import (
	"errors"
	"fmt"
)

// Error kinds. Test with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Error is a failure the caller can act on. Its message is safe to show to
// API clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func validationError(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func conflictError(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func notFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// NotFoundPolicy decides how update and delete report an id that matches no
// record.
type NotFoundPolicy int

const (
	// Lenient treats a missing record as success: update yields no record and
	// delete reports success.
	Lenient NotFoundPolicy = iota
	// Strict fails with ErrNotFound.
	Strict
)

func (p NotFoundPolicy) missing(entity string) error {
	if p == Strict {
		return notFoundError(entity + " not found")
	}
	return nil
}
