package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrNotFound marks a missing row or object.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput marks caller mistakes (bad id, illegal transition).
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict marks an optimistic-lock loss: the record changed
	// underneath the caller and the operation must be re-read or dropped.
	ErrConflict = errors.New("conflict")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// FailedPreconditionError maps a state conflict onto the gRPC boundary.
func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}
