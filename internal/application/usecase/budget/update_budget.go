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

// UpdateBudgetInput represents the input for budget update. Nil fields keep
// their current values.
type UpdateBudgetInput struct {
	UserID          uuid.UUID
	BudgetID        uuid.UUID
	Name            *string
	Description     *string
	Amount          *decimal.Decimal
	Period          *entity.BudgetPeriod
	StartDate       *time.Time
	EndDate         *time.Time
	Categories      *entity.CategoryScope
	AlertPercentage *float64
	AlertEnabled    *bool
	IsActive        *bool
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget edits.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute applies the requested changes after re-validating the result.
func (uc *UpdateBudgetUseCase) Execute(
	ctx context.Context,
	input UpdateBudgetInput,
) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnauthorizedBudgetAccess,
			"unauthorized access to budget",
			domainerror.ErrUnauthorizedBudgetAccess,
		)
	}

	if input.Name != nil {
		budget.Name = *input.Name
	}
	if input.Description != nil {
		budget.Description = *input.Description
	}
	if input.Amount != nil {
		budget.Amount = *input.Amount
	}
	if input.Period != nil {
		budget.Period = *input.Period
	}
	if input.StartDate != nil {
		budget.StartDate = entity.DateOnly(*input.StartDate)
	}
	if input.EndDate != nil {
		budget.EndDate = entity.DateOnly(*input.EndDate)
	}
	if input.Categories != nil {
		budget.Categories = *input.Categories
	}
	if input.AlertPercentage != nil {
		budget.AlertPercentage = *input.AlertPercentage
	}
	if input.AlertEnabled != nil {
		budget.AlertEnabled = *input.AlertEnabled
	}
	if input.IsActive != nil {
		budget.IsActive = *input.IsActive
	}

	if err := validateBudgetFields(budget.Amount, budget.StartDate, budget.EndDate, budget.Period, budget.AlertPercentage); err != nil {
		return nil, err
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
