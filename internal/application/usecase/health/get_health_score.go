// Package health contains financial health scoring use cases.
package health

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GetHealthScoreInput represents the input for computing a health score.
type GetHealthScoreInput struct {
	UserID uuid.UUID
}

// GetHealthScoreOutput represents the output of computing a health score.
type GetHealthScoreOutput struct {
	HealthScore *entity.HealthScore
}

// GetHealthScoreUseCase assembles the aggregate financials from the budget,
// transaction, and account collaborators and scores them. Results are cached
// for a short TTL; a cache failure falls through to a fresh computation.
type GetHealthScoreUseCase struct {
	currentBudgetsUC *budget.GetCurrentBudgetsUseCase
	transactionRepo  adapter.TransactionRepository
	accountRepo      adapter.AccountRepository
	cache            adapter.SummaryCache
	clock            adapter.Clock
}

// NewGetHealthScoreUseCase creates a new GetHealthScoreUseCase instance.
func NewGetHealthScoreUseCase(
	currentBudgetsUC *budget.GetCurrentBudgetsUseCase,
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	cache adapter.SummaryCache,
	clock adapter.Clock,
) *GetHealthScoreUseCase {
	return &GetHealthScoreUseCase{
		currentBudgetsUC: currentBudgetsUC,
		transactionRepo:  transactionRepo,
		accountRepo:      accountRepo,
		cache:            cache,
		clock:            clock,
	}
}

// Execute returns the user's composite health score. The savings-rate and
// concentration inputs are measured over the current calendar month; the
// transaction volume covers the whole tracked history.
func (uc *GetHealthScoreUseCase) Execute(
	ctx context.Context,
	input GetHealthScoreInput,
) (*GetHealthScoreOutput, error) {
	if uc.cache != nil {
		if score, ok := uc.cache.GetHealthScore(ctx, input.UserID); ok {
			return &GetHealthScoreOutput{HealthScore: score}, nil
		}
	}

	monthStart, monthEnd := budget.MonthWindow(uc.clock.Now())

	var (
		currentBudgets *budget.GetCurrentBudgetsOutput
		totals         *entity.TransactionTotals
		categoryTotals []*entity.CategoryExpenseTotal
		accounts       []*entity.Account
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
		accounts, err = uc.accountRepo.FindActiveByUserID(gctx, input.UserID)
		if err != nil {
			err = fmt.Errorf("failed to fetch accounts: %w", err)
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

	onTrack := 0
	for _, ws := range currentBudgets.Budgets {
		if !ws.IsOverBudget {
			onTrack++
		}
	}

	topShare, hasExpenses := topCategoryShare(categoryTotals)

	score := CalculateHealthScore(entity.AggregateFinancials{
		SavingsRate:      savingsRate(totals),
		BudgetsOnTrack:   onTrack,
		BudgetsTotal:     len(currentBudgets.Budgets),
		TopCategoryShare: topShare,
		HasExpenses:      hasExpenses,
		AccountCount:     len(accounts),
		TransactionCount: dateRange.TotalTransactions,
	})

	if uc.cache != nil {
		uc.cache.SetHealthScore(ctx, input.UserID, score)
	}

	return &GetHealthScoreOutput{HealthScore: score}, nil
}

// savingsRate returns the percentage of income kept, 0 when there is no income.
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

// topCategoryShare returns the top category's share of total expenses in percent.
func topCategoryShare(categoryTotals []*entity.CategoryExpenseTotal) (share float64, hasExpenses bool) {
	total := decimal.Zero
	top := decimal.Zero
	for _, ct := range categoryTotals {
		total = total.Add(ct.Total)
		if ct.Total.GreaterThan(top) {
			top = ct.Total
		}
	}
	if !total.IsPositive() {
		return 0, false
	}
	share, _ = top.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return share, true
}
