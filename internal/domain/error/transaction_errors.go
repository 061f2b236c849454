// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrMissingTransactionFields is returned when amount, date or description is absent.
	ErrMissingTransactionFields = errors.New("amount, date and description are required")

	// ErrInvalidTransactionCategory is returned when the category is absent or not a known value.
	ErrInvalidTransactionCategory = errors.New("invalid transaction category")

	// ErrInvalidTransactionDate is returned when the transaction date cannot be parsed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the transaction amount is invalid.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionCategory TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate     TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount   TransactionErrorCode = "TXN-010003"
	ErrCodeDescriptionTooLong         TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields   TransactionErrorCode = "TXN-010010"

	// Internal errors (99XXXX)
	ErrCodeTransactionPersistence TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the error was caused by invalid input.
func (e *TransactionError) IsValidation() bool {
	return e.Code != ErrCodeTransactionPersistence
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
