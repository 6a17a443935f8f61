// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// spendFanOutLimit bounds how many per-budget spend computations run at once.
const spendFanOutLimit = 8

// GetCurrentBudgetsInput represents the input for fetching current budgets.
type GetCurrentBudgetsInput struct {
	UserID uuid.UUID
}

// GetCurrentBudgetsOutput represents the output of fetching current budgets.
type GetCurrentBudgetsOutput struct {
	Budgets []*entity.BudgetWithSpending
}

// GetCurrentBudgetsUseCase returns every budget whose window contains today,
// each composed with its derived spending figures.
type GetCurrentBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	spendUC    *ComputeSpendingUseCase
	clock      adapter.Clock
}

// NewGetCurrentBudgetsUseCase creates a new GetCurrentBudgetsUseCase instance.
func NewGetCurrentBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	spendUC *ComputeSpendingUseCase,
	clock adapter.Clock,
) *GetCurrentBudgetsUseCase {
	return &GetCurrentBudgetsUseCase{
		budgetRepo: budgetRepo,
		spendUC:    spendUC,
		clock:      clock,
	}
}

// Execute fetches the user's current budgets and computes spending for each
// with bounded parallel fan-out. Results keep the repository's ordering.
func (uc *GetCurrentBudgetsUseCase) Execute(
	ctx context.Context,
	input GetCurrentBudgetsInput,
) (*GetCurrentBudgetsOutput, error) {
	now := uc.clock.Now()

	budgets, err := uc.budgetRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active budgets: %w", err)
	}

	current := make([]*entity.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.IsCurrent(now) {
			current = append(current, b)
		}
	}

	results := make([]*entity.BudgetWithSpending, len(current))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(spendFanOutLimit)
	for i, b := range current {
		i, b := i, b
		g.Go(func() error {
			ws, err := uc.spendUC.Execute(gctx, b, now)
			if err != nil {
				return err
			}
			results[i] = ws
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetCurrentBudgetsOutput{Budgets: results}, nil
}
