// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// createFanOutLimit bounds how many budget creations run at once.
const createFanOutLimit = 4

// maxRecurringMonths caps how far ahead recurring budgets can be generated.
const maxRecurringMonths = 24

// CreateRecurringBudgetsInput represents the input for recurring budget generation.
type CreateRecurringBudgetsInput struct {
	UserID          uuid.UUID
	Name            string
	Description     string
	Amount          decimal.Decimal
	Categories      entity.CategoryScope
	AlertPercentage float64
	AlertEnabled    bool
	Months          int
}

// CreateRecurringBudgetsOutput represents the output of recurring budget generation.
type CreateRecurringBudgetsOutput struct {
	Budgets []*entity.Budget
}

// CreateRecurringBudgetsUseCase generates consecutive monthly budgets from a
// template, starting with the current month. Creations are not transactional:
// a failure partway through leaves earlier budgets persisted.
type CreateRecurringBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewCreateRecurringBudgetsUseCase creates a new CreateRecurringBudgetsUseCase instance.
func NewCreateRecurringBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	clock adapter.Clock,
) *CreateRecurringBudgetsUseCase {
	return &CreateRecurringBudgetsUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute generates and persists the monthly budgets. Each budget is named
// after the template with its target month appended, e.g. "Groceries (March 2025)".
func (uc *CreateRecurringBudgetsUseCase) Execute(
	ctx context.Context,
	input CreateRecurringBudgetsInput,
) (*CreateRecurringBudgetsOutput, error) {
	if input.Months < 1 || input.Months > maxRecurringMonths {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidRecurringMonths,
			"months must be between 1 and 24",
			domainerror.ErrInvalidRecurringMonths,
		)
	}
	if err := validateBudgetFields(
		input.Amount,
		uc.clock.Now(), uc.clock.Now(),
		entity.BudgetPeriodMonth,
		input.AlertPercentage,
	); err != nil {
		return nil, err
	}

	firstMonthStart, _ := MonthWindow(uc.clock.Now())
	budgets := make([]*entity.Budget, input.Months)
	for i := 0; i < input.Months; i++ {
		monthStart := firstMonthStart.AddDate(0, i, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)
		budgets[i] = entity.NewBudget(
			input.UserID,
			fmt.Sprintf("%s (%s)", input.Name, MonthLabel(monthStart)),
			input.Description,
			input.Amount,
			entity.BudgetPeriodMonth,
			monthStart,
			monthEnd,
			input.Categories,
			input.AlertPercentage,
			input.AlertEnabled,
		)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(createFanOutLimit)
	for _, b := range budgets {
		b := b
		g.Go(func() error {
			if err := uc.budgetRepo.Create(gctx, b); err != nil {
				return fmt.Errorf("failed to create recurring budget %q: %w", b.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CreateRecurringBudgetsOutput{Budgets: budgets}, nil
}
