// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// CreateFromPreviousMonthInput represents the input for rolling budgets forward.
// TargetMonth defaults to the current calendar month when nil.
type CreateFromPreviousMonthInput struct {
	UserID      uuid.UUID
	TargetMonth *time.Time
}

// CreateFromPreviousMonthOutput represents the output of rolling budgets forward.
type CreateFromPreviousMonthOutput struct {
	Budgets []*entity.Budget
}

// CreateFromPreviousMonthUseCase copies every budget that exactly covered the
// month before the target month into the target month's window. Creations are
// not transactional: a failure partway through leaves earlier budgets persisted.
type CreateFromPreviousMonthUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewCreateFromPreviousMonthUseCase creates a new CreateFromPreviousMonthUseCase instance.
func NewCreateFromPreviousMonthUseCase(
	budgetRepo adapter.BudgetRepository,
	clock adapter.Clock,
) *CreateFromPreviousMonthUseCase {
	return &CreateFromPreviousMonthUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute rolls the previous month's budgets into the target month, copying
// amount, period, category scope, and alert settings.
func (uc *CreateFromPreviousMonthUseCase) Execute(
	ctx context.Context,
	input CreateFromPreviousMonthInput,
) (*CreateFromPreviousMonthOutput, error) {
	target := uc.clock.Now()
	if input.TargetMonth != nil {
		target = *input.TargetMonth
	}

	targetStart, targetEnd := MonthWindow(target)
	prevStart := targetStart.AddDate(0, -1, 0)
	prevEnd := targetStart.AddDate(0, 0, -1)

	sources, err := uc.budgetRepo.FindCoveringWindow(ctx, input.UserID, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous month budgets: %w", err)
	}
	if len(sources) == 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNoPreviousMonthBudgets,
			"no budgets found for the previous month",
			domainerror.ErrNoPreviousMonthBudgets,
		)
	}

	budgets := make([]*entity.Budget, len(sources))
	for i, src := range sources {
		budgets[i] = entity.NewBudget(
			src.UserID,
			src.Name,
			src.Description,
			src.Amount,
			src.Period,
			targetStart,
			targetEnd,
			src.Categories,
			src.AlertPercentage,
			src.AlertEnabled,
		)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(createFanOutLimit)
	for _, b := range budgets {
		b := b
		g.Go(func() error {
			if err := uc.budgetRepo.Create(gctx, b); err != nil {
				return fmt.Errorf("failed to create budget %q: %w", b.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CreateFromPreviousMonthOutput{Budgets: budgets}, nil
}
