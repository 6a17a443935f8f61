// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period type of a budget window.
type BudgetPeriod string

const (
	BudgetPeriodWeek    BudgetPeriod = "week"
	BudgetPeriodMonth   BudgetPeriod = "month"
	BudgetPeriodQuarter BudgetPeriod = "quarter"
	BudgetPeriodYear    BudgetPeriod = "year"
	BudgetPeriodCustom  BudgetPeriod = "custom"
)

// DefaultAlertPercentage is the alert threshold used when a budget does not set one.
const DefaultAlertPercentage = 80.0

// CategoryScope identifies which categories a budget applies to.
// The zero value is not meaningful; use AllCategories or SpecificCategories.
type CategoryScope struct {
	all bool
	ids []uuid.UUID
}

// AllCategories returns a scope that matches every transaction category,
// including uncategorized transactions.
func AllCategories() CategoryScope {
	return CategoryScope{all: true}
}

// SpecificCategories returns a scope that matches only the given category IDs.
// An empty set matches nothing.
func SpecificCategories(ids []uuid.UUID) CategoryScope {
	copied := make([]uuid.UUID, len(ids))
	copy(copied, ids)
	return CategoryScope{ids: copied}
}

// IsAll reports whether the scope matches all categories.
func (s CategoryScope) IsAll() bool {
	return s.all
}

// CategoryIDs returns the specific category IDs of the scope (nil for all-categories).
func (s CategoryScope) CategoryIDs() []uuid.UUID {
	if s.all {
		return nil
	}
	copied := make([]uuid.UUID, len(s.ids))
	copy(copied, s.ids)
	return copied
}

// Matches reports whether a transaction with the given category falls inside the scope.
// A nil categoryID means the transaction is uncategorized.
func (s CategoryScope) Matches(categoryID *uuid.UUID) bool {
	if s.all {
		return true
	}
	if categoryID == nil {
		return false
	}
	for _, id := range s.ids {
		if id == *categoryID {
			return true
		}
	}
	return false
}

// Budget represents a user-scoped spending envelope.
type Budget struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Description     string
	Amount          decimal.Decimal
	Period          BudgetPeriod
	StartDate       time.Time
	EndDate         time.Time
	Categories      CategoryScope
	AlertPercentage float64
	AlertEnabled    bool
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(
	userID uuid.UUID,
	name string,
	description string,
	amount decimal.Decimal,
	period BudgetPeriod,
	startDate, endDate time.Time,
	categories CategoryScope,
	alertPercentage float64,
	alertEnabled bool,
) *Budget {
	now := time.Now().UTC()

	if alertPercentage <= 0 {
		alertPercentage = DefaultAlertPercentage
	}

	return &Budget{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Description:     description,
		Amount:          amount,
		Period:          period,
		StartDate:       startDate,
		EndDate:         endDate,
		Categories:      categories,
		AlertPercentage: alertPercentage,
		AlertEnabled:    alertEnabled,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// AlertThreshold returns the percentage at which the budget becomes alert-eligible.
func (b *Budget) AlertThreshold() float64 {
	if b.AlertPercentage <= 0 {
		return DefaultAlertPercentage
	}
	return b.AlertPercentage
}

// IsCurrent reports whether the budget is active and its window contains the given day.
func (b *Budget) IsCurrent(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	day := DateOnly(now)
	return !day.Before(DateOnly(b.StartDate)) && !day.After(DateOnly(b.EndDate))
}

// DateOnly truncates a time to midnight UTC, keeping only the calendar day.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BudgetWithSpending composes a Budget with its derived spending figures.
// Derived values are recomputed on every request and never persisted.
type BudgetWithSpending struct {
	Budget         *Budget
	ActualSpent    decimal.Decimal
	Remaining      decimal.Decimal
	PercentageUsed float64
	IsOverBudget   bool
	DaysRemaining  int
}
