// Package insight contains insight generation use cases.
package insight

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GetInsightsInput represents the input for insight generation.
type GetInsightsInput struct {
	UserID uuid.UUID
}

// GetInsightsOutput represents the output of insight generation.
type GetInsightsOutput struct {
	Insights []*entity.Insight
}

// GetInsightsUseCase assembles the financial snapshot from the collaborators
// and runs the insight rules over it.
type GetInsightsUseCase struct {
	currentBudgetsUC *budget.GetCurrentBudgetsUseCase
	transactionRepo  adapter.TransactionRepository
	clock            adapter.Clock
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	currentBudgetsUC *budget.GetCurrentBudgetsUseCase,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		currentBudgetsUC: currentBudgetsUC,
		transactionRepo:  transactionRepo,
		clock:            clock,
	}
}

// Execute returns up to four ranked insights for the user. The savings-rate
// and concentration rules read the current calendar month; the frequency rule
// averages over the whole observed transaction history.
func (uc *GetInsightsUseCase) Execute(
	ctx context.Context,
	input GetInsightsInput,
) (*GetInsightsOutput, error) {
	now := uc.clock.Now()
	monthStart, monthEnd := budget.MonthWindow(now)

	var (
		currentBudgets *budget.GetCurrentBudgetsOutput
		totals         *entity.TransactionTotals
		categoryTotals []*entity.CategoryExpenseTotal
		dateRange      *entity.TransactionDateRange
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		currentBudgets, err = uc.currentBudgetsUC.Execute(gctx, budget.GetCurrentBudgetsInput{UserID: input.UserID})
		return err
	})
	g.Go(func() (err error) {
		totals, err = uc.transactionRepo.GetTotals(gctx, input.UserID, monthStart, monthEnd)
		if err != nil {
			err = fmt.Errorf("failed to fetch monthly totals: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		categoryTotals, err = uc.transactionRepo.GetCategoryExpenseTotals(gctx, input.UserID, monthStart, monthEnd)
		if err != nil {
			err = fmt.Errorf("failed to fetch category totals: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		dateRange, err = uc.transactionRepo.GetDateRange(gctx, input.UserID)
		if err != nil {
			err = fmt.Errorf("failed to fetch transaction range: %w", err)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overBudget := 0
	for _, ws := range currentBudgets.Budgets {
		if ws.IsOverBudget {
			overBudget++
		}
	}

	topName, topShare := topCategory(categoryTotals)

	snapshot := entity.FinancialSnapshot{
		SavingsRate:           savingsRate(totals),
		OverBudgetCount:       overBudget,
		TopCategoryName:       topName,
		TopCategoryShare:      topShare,
		AvgTransactionsPerDay: avgTransactionsPerDay(dateRange, now),
	}

	return &GetInsightsOutput{Insights: GenerateInsights(snapshot)}, nil
}

func savingsRate(totals *entity.TransactionTotals) float64 {
	if !totals.IncomeTotal.IsPositive() {
		return 0
	}
	rate, _ := totals.IncomeTotal.Sub(totals.ExpenseTotal).
		Div(totals.IncomeTotal).
		Mul(decimal.NewFromInt(100)).
		Float64()
	return rate
}

func topCategory(categoryTotals []*entity.CategoryExpenseTotal) (name string, share float64) {
	total := decimal.Zero
	top := decimal.Zero
	for _, ct := range categoryTotals {
		total = total.Add(ct.Total)
		if ct.Total.GreaterThan(top) {
			top = ct.Total
			name = ct.CategoryName
		}
	}
	if !total.IsPositive() {
		return "", 0
	}
	share, _ = top.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return name, share
}

// avgTransactionsPerDay averages the tracked count over the observed window,
// from the oldest transaction to today (minimum one day).
func avgTransactionsPerDay(dateRange *entity.TransactionDateRange, now time.Time) float64 {
	if dateRange.TotalTransactions == 0 || dateRange.OldestDate == nil {
		return 0
	}
	days := math.Max(1, entity.DateOnly(now).Sub(entity.DateOnly(*dateRange.OldestDate)).Hours()/24+1)
	return float64(dateRange.TotalTransactions) / days
}
