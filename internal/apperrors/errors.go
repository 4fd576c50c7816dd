package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates an outflow larger than the account's spendable balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrExceedsRemaining indicates a payment larger than the sale's remaining amount.
var ErrExceedsRemaining = errors.New("amount exceeds remaining sale balance")

// ErrExceedsDebt indicates a payment larger than the party's recorded outstanding debt.
var ErrExceedsDebt = errors.New("amount exceeds outstanding debt")

// ErrNegativeBalance indicates a debt decrease that would drive the balance below zero.
var ErrNegativeBalance = errors.New("operation would drive balance negative")

// ErrTimeout indicates the operation could not acquire its locks within the
// configured window. Retryable by the caller; the engine never retries internally.
var ErrTimeout = errors.New("operation timed out")

// ErrConflict indicates a serialization conflict with a concurrent operation.
// Retryable by the caller.
var ErrConflict = errors.New("concurrent modification conflict")

// AppError carries an internal code and a human-readable message alongside the
// wrapped cause. The pgsql layer uses it for infrastructure failures that have
// no dedicated sentinel.
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

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
