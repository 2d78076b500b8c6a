package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks, or that the
// requested operation is illegal for the entity's current state.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user is not allowed to touch the resource,
// typically a cross-organization access attempt or a wrong-actor mutation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that a competing mutation already resolved the outcome,
// e.g. the shift was assigned to somebody else first.
var ErrConflict = errors.New("conflicting state")

// ErrUnavailable indicates an external collaborator (geomapping, accounting) failed
// or timed out. Callers decide whether to fall back, retry, or soft-report it.
var ErrUnavailable = errors.New("external service unavailable")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the underlying cause.
// Repositories use it for infrastructure failures that services just propagate.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
