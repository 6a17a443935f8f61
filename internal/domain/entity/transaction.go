// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a transaction.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction represents a financial transaction. The engine reads
// transactions but never mutates them.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   *uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal // Always positive; Type carries the direction
	Type        TransactionType
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// TransactionTotals represents aggregated income/expense totals over a window.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// CategoryExpenseTotal represents the summed expenses of one category over a window.
type CategoryExpenseTotal struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// TransactionDateRange represents the date boundaries of a user's tracked history.
type TransactionDateRange struct {
	OldestDate        *time.Time
	NewestDate        *time.Time
	TotalTransactions int
}
