// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase handles listing a user's active budgets.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute retrieves all active budgets for the user.
func (uc *ListBudgetsUseCase) Execute(
	ctx context.Context,
	input ListBudgetsInput,
) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &ListBudgetsOutput{Budgets: budgets}, nil
}
