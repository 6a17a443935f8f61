// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertType classifies how far a budget has progressed past its threshold.
type AlertType string

const (
	AlertTypeApproaching AlertType = "approaching"
	AlertTypeWarning     AlertType = "warning"
	AlertTypeExceeded    AlertType = "exceeded"
)

// AlertPriority ranks the urgency of a budget alert.
type AlertPriority string

const (
	AlertPriorityLow    AlertPriority = "low"
	AlertPriorityMedium AlertPriority = "medium"
	AlertPriorityHigh   AlertPriority = "high"
)

// Rank returns the numeric ordering weight of a priority.
func (p AlertPriority) Rank() int {
	switch p {
	case AlertPriorityHigh:
		return 3
	case AlertPriorityMedium:
		return 2
	case AlertPriorityLow:
		return 1
	default:
		return 0
	}
}

// BudgetAlert is a derived alert raised when a budget crosses its
// configured spending threshold. It carries a snapshot of the figures
// at classification time; delivery is handled outside the engine.
type BudgetAlert struct {
	BudgetID       uuid.UUID
	BudgetName     string
	Type           AlertType
	Priority       AlertPriority
	Message        string
	Amount         decimal.Decimal
	Spent          decimal.Decimal
	Remaining      decimal.Decimal
	PercentageUsed float64
	DaysRemaining  int
}
