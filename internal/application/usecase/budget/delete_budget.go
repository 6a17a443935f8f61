// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// DeleteBudgetUseCase deactivates a budget. Deletion is a soft transition to
// is_active=false; physical removal is a separate maintenance path.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute deactivates the budget after checking ownership.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return err
	}

	if budget.UserID != input.UserID {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeUnauthorizedBudgetAccess,
			"unauthorized access to budget",
			domainerror.ErrUnauthorizedBudgetAccess,
		)
	}

	if err := uc.budgetRepo.Deactivate(ctx, budget.ID); err != nil {
		return fmt.Errorf("failed to deactivate budget: %w", err)
	}

	return nil
}
