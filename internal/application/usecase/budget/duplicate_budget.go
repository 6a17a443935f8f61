// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// DuplicateBudgetInput represents the input for budget duplication.
type DuplicateBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// DuplicateBudgetOutput represents the output of budget duplication.
type DuplicateBudgetOutput struct {
	Budget *entity.Budget
}

// DuplicateBudgetUseCase copies an existing budget into a fresh window
// starting today and running one month.
type DuplicateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewDuplicateBudgetUseCase creates a new DuplicateBudgetUseCase instance.
func NewDuplicateBudgetUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *DuplicateBudgetUseCase {
	return &DuplicateBudgetUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute duplicates the source budget. The copy keeps the amount, period,
// category scope, and alert settings; the window becomes [today, today+1mo].
func (uc *DuplicateBudgetUseCase) Execute(
	ctx context.Context,
	input DuplicateBudgetInput,
) (*DuplicateBudgetOutput, error) {
	source, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}

	if source.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnauthorizedBudgetAccess,
			"unauthorized access to budget",
			domainerror.ErrUnauthorizedBudgetAccess,
		)
	}

	today := entity.DateOnly(uc.clock.Now())

	copy := entity.NewBudget(
		source.UserID,
		source.Name+" (Copy)",
		source.Description,
		source.Amount,
		source.Period,
		today,
		today.AddDate(0, 1, 0),
		source.Categories,
		source.AlertPercentage,
		source.AlertEnabled,
	)

	if err := uc.budgetRepo.Create(ctx, copy); err != nil {
		return nil, fmt.Errorf("failed to create duplicated budget: %w", err)
	}

	return &DuplicateBudgetOutput{Budget: copy}, nil
}
