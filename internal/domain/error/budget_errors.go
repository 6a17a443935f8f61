// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must be greater than zero")

	// ErrInvalidBudgetDateRange is returned when end_date is before start_date.
	ErrInvalidBudgetDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidBudgetPeriod is returned when the period is not a known value.
	ErrInvalidBudgetPeriod = errors.New("period must be: week, month, quarter, year, or custom")

	// ErrInvalidAlertPercentage is returned when alert_percentage falls outside 0-100.
	ErrInvalidAlertPercentage = errors.New("alert_percentage must be between 0 and 100")

	// ErrInvalidRecurringMonths is returned when the recurring month count is invalid.
	ErrInvalidRecurringMonths = errors.New("months must be between 1 and 24")

	// ErrNoPreviousMonthBudgets is returned when no budgets exist to roll forward from.
	ErrNoPreviousMonthBudgets = errors.New("no budgets found for the previous month")

	// ErrUnauthorizedBudgetAccess is returned when a user accesses another user's budget.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound           BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetAmount      BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetDateRange   BudgetErrorCode = "BDG-010003"
	ErrCodeInvalidBudgetPeriod      BudgetErrorCode = "BDG-010004"
	ErrCodeInvalidAlertPercentage   BudgetErrorCode = "BDG-010005"
	ErrCodeInvalidRecurringMonths   BudgetErrorCode = "BDG-010006"
	ErrCodeNoPreviousMonthBudgets   BudgetErrorCode = "BDG-010007"
	ErrCodeUnauthorizedBudgetAccess BudgetErrorCode = "BDG-010008"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BDG-990001"
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

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
