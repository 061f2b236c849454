// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrMissingBudgetFields is returned when a required budget field or query parameter is absent.
	ErrMissingBudgetFields = errors.New("missing required budget fields")

	// ErrInvalidBudgetMonth is returned when the month is outside 1-12.
	ErrInvalidBudgetMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidBudgetYear is returned when the year is outside the accepted range.
	ErrInvalidBudgetYear = errors.New("year is out of range")

	// ErrInvalidBudgetCategory is returned when the category is not a known value.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be greater than zero")

	// ErrBudgetAlreadyExists is returned by the store when the (category, month, year)
	// natural key is already taken.
	ErrBudgetAlreadyExists = errors.New("budget already exists for category and period")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetMonth    BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetYear     BudgetErrorCode = "BDG-010003"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BDG-010004"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BDG-010005"

	// Internal errors (99XXXX)
	ErrCodeBudgetPersistence BudgetErrorCode = "BDG-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the error was caused by invalid input.
func (e *BudgetError) IsValidation() bool {
	return e.Code != ErrCodeBudgetPersistence
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
