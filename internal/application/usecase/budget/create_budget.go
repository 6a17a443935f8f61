// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID          uuid.UUID
	Name            string
	Description     string
	Amount          decimal.Decimal
	Period          entity.BudgetPeriod
	StartDate       time.Time
	EndDate         time.Time
	Categories      entity.CategoryScope
	AlertPercentage float64
	AlertEnabled    bool
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute validates and persists a new budget.
func (uc *CreateBudgetUseCase) Execute(
	ctx context.Context,
	input CreateBudgetInput,
) (*CreateBudgetOutput, error) {
	if err := validateBudgetFields(input.Amount, input.StartDate, input.EndDate, input.Period, input.AlertPercentage); err != nil {
		return nil, err
	}

	budget := entity.NewBudget(
		input.UserID,
		input.Name,
		input.Description,
		input.Amount,
		input.Period,
		entity.DateOnly(input.StartDate),
		entity.DateOnly(input.EndDate),
		input.Categories,
		input.AlertPercentage,
		input.AlertEnabled,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}

// validateBudgetFields rejects invalid budget definitions before any computation.
func validateBudgetFields(
	amount decimal.Decimal,
	startDate, endDate time.Time,
	period entity.BudgetPeriod,
	alertPercentage float64,
) error {
	if !amount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if endDate.Before(startDate) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidBudgetDateRange,
		)
	}

	switch period {
	case entity.BudgetPeriodWeek, entity.BudgetPeriodMonth, entity.BudgetPeriodQuarter,
		entity.BudgetPeriodYear, entity.BudgetPeriodCustom:
	default:
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be: week, month, quarter, year, or custom",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if alertPercentage < 0 || alertPercentage > 100 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAlertPercentage,
			"alert_percentage must be between 0 and 100",
			domainerror.ErrInvalidAlertPercentage,
		)
	}

	return nil
}
