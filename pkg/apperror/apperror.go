package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrPermission   = errors.New("permission denied")
	ErrInternal     = errors.New("internal server error")
)

// AppError carries a sentinel base error for errors.Is matching, a message
// safe to show to clients, and an internal cause that is only logged.
type AppError struct {
	BaseError error
	Message   string
	Fields    map[string]string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.BaseError.Error(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.BaseError.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func New(base error, msg string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	return &AppError{
		BaseError: ErrNotFound,
		Message:   fmt.Sprintf("%s with id '%s' was not found", resource, identifier),
	}
}

func NewInvalidInput(msg string, err error) *AppError {
	return &AppError{BaseError: ErrInvalidInput, Message: msg, Err: err}
}

// NewValidation reports per-field violations from request validation.
func NewValidation(fields map[string]string) *AppError {
	return &AppError{
		BaseError: ErrInvalidInput,
		Message:   "validation failed",
		Fields:    fields,
	}
}

func NewConflict(resource, field, value string) *AppError {
	return &AppError{
		BaseError: ErrConflict,
		Message:   fmt.Sprintf("%s with %s '%s' already exists", resource, field, value),
	}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{BaseError: ErrUnauthorized, Message: msg}
}

func NewPermissionDenied(msg string) *AppError {
	return &AppError{BaseError: ErrPermission, Message: msg}
}

func NewInternal(msg string, err error) *AppError {
	return &AppError{BaseError: ErrInternal, Message: msg, Err: err}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
