// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType represents the kind of financial account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeCash       AccountType = "cash"
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a financial account. Read-only to the budget engine;
// account management lives outside this service.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           AccountType
	IncludeInTotal bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
