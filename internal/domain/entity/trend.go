// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrendPoint is one month's aggregate budgeted/spent/saved figures.
type TrendPoint struct {
	Month       time.Time // first day of the month, UTC
	PeriodLabel string    // e.g. "Mar 2025"
	Budgeted    decimal.Decimal
	Spent       decimal.Decimal
	Saved       decimal.Decimal
	SavingsRate float64
}
