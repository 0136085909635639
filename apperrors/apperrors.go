// Package apperrors defines the domain error kinds the API can surface.
// Every kind carries the HTTP status and the stable machine-readable code
// that ends up in the error envelope.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound      = "RESOURCE_NOT_FOUND"
	CodeAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	CodeValidation    = "VALIDATION_ERROR"
	CodeDatabase      = "DATABASE_ERROR"
	CodeInternal      = "INTERNAL_SERVER_ERROR"
)

// AppError is a tagged domain error. Message is safe to return to the
// caller; Err holds the underlying cause and is only logged.
type AppError struct {
	Status  int
	Code    string
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that no food exists with the given id.
func NotFound(id uint) *AppError {
	return &AppError{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("food with id %d not found", id),
	}
}

// NotFoundByCode reports that no food exists with the given food code.
func NotFoundByCode(foodCd string) *AppError {
	return &AppError{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("food with code %q not found", foodCd),
	}
}

// AlreadyExists reports a food code collision.
func AlreadyExists(foodCd string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeAlreadyExists,
		Message: fmt.Sprintf("food code %q already exists", foodCd),
	}
}

// Validation reports a payload that failed validation. details, when
// non-nil, is attached under the envelope's error.details field.
func Validation(message string, details map[string]interface{}, err error) *AppError {
	return &AppError{
		Status:  http.StatusUnprocessableEntity,
		Code:    CodeValidation,
		Message: message,
		Details: details,
		Err:     err,
	}
}

// Database wraps an unexpected store fault. The caller sees a generic
// message only; the cause stays server-side.
func Database(op string, err error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    CodeDatabase,
		Message: "a database error occurred",
		Err:     fmt.Errorf("%s: %w", op, err),
	}
}

// Internal wraps any fault that no other kind classifies.
func Internal(err error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "an internal server error occurred",
		Err:     err,
	}
}

// From returns err as an *AppError, wrapping unclassified errors as
// Internal so every error reaching the translator has a status and code.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
