// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// ComputeSpendingUseCase derives spend figures for a single budget from the
// transaction collaborator. It performs no writes.
type ComputeSpendingUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewComputeSpendingUseCase creates a new ComputeSpendingUseCase instance.
func NewComputeSpendingUseCase(transactionRepo adapter.TransactionRepository) *ComputeSpendingUseCase {
	return &ComputeSpendingUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches the budget's expense transactions and returns the budget
// composed with its derived spending figures. Collaborator errors propagate
// unchanged; a failed lookup never reports zero spend.
func (uc *ComputeSpendingUseCase) Execute(
	ctx context.Context,
	budget *entity.Budget,
	now time.Time,
) (*entity.BudgetWithSpending, error) {
	transactions, err := uc.transactionRepo.FindExpensesInWindow(
		ctx,
		budget.UserID,
		budget.Categories.CategoryIDs(),
		budget.StartDate,
		budget.EndDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for budget %s: %w", budget.ID, err)
	}

	return ComposeSpending(budget, transactions, now), nil
}

// ComposeSpending computes the derived spend figures for a budget from an
// already-fetched transaction snapshot. Pure function of its inputs.
func ComposeSpending(
	budget *entity.Budget,
	transactions []*entity.Transaction,
	now time.Time,
) *entity.BudgetWithSpending {
	actualSpent := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		if !budget.Categories.Matches(tx.CategoryID) {
			continue
		}
		actualSpent = actualSpent.Add(tx.Amount.Abs())
	}

	remaining := budget.Amount.Sub(actualSpent)

	var percentageUsed float64
	if budget.Amount.IsPositive() {
		percentageUsed, _ = actualSpent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &entity.BudgetWithSpending{
		Budget:         budget,
		ActualSpent:    actualSpent,
		Remaining:      remaining,
		PercentageUsed: percentageUsed,
		IsOverBudget:   percentageUsed > 100,
		DaysRemaining:  daysRemaining(budget.EndDate, now),
	}
}

// daysRemaining returns the whole days left until the end date, never negative.
func daysRemaining(endDate, now time.Time) int {
	days := math.Ceil(entity.DateOnly(endDate).Sub(entity.DateOnly(now)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}
