package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller's role does not allow the operation.
var ErrForbidden = errors.New("permission denied")

// ErrInsufficientBalance indicates that a withdrawal exceeds the available balance of its fund source.
var ErrInsufficientBalance = errors.New("insufficient balance")

// AppError wraps an infrastructure failure with the HTTP status it should map to.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// FieldError reports a single invalid field. It matches ErrValidation.
type FieldError struct {
	Field   string
	Message string
}

// NewFieldError creates a FieldError for field.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Message)
}

func (e *FieldError) Is(target error) bool { return target == ErrValidation }

// InsufficientBalanceError carries what the caller needs to explain a rejected withdrawal.
// It matches ErrInsufficientBalance.
type InsufficientBalanceError struct {
	Source      string
	SourceLabel string
	Available   decimal.Decimal
	Requested   decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	label := e.SourceLabel
	if label == "" {
		label = e.Source
	}
	return fmt.Sprintf("insufficient balance in %s: available %s, requested %s",
		label, e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientBalanceError) Is(target error) bool { return target == ErrInsufficientBalance }
