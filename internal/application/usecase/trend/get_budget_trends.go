// Package trend contains budget trend analysis use cases.
package trend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

const (
	// DefaultTrendMonths is the window length used when the caller does not set one.
	DefaultTrendMonths = 6

	// maxTrendMonths caps how far back the trend series can reach.
	maxTrendMonths = 24

	// monthFanOutLimit bounds how many month replays run at once.
	monthFanOutLimit = 4
)

// GetBudgetTrendsInput represents the input for trend analysis.
// Months defaults to DefaultTrendMonths when zero.
type GetBudgetTrendsInput struct {
	UserID uuid.UUID
	Months int
}

// GetBudgetTrendsOutput represents the output of trend analysis.
type GetBudgetTrendsOutput struct {
	Trends []*entity.TrendPoint
}

// GetBudgetTrendsUseCase replays the spend computation over the trailing
// months, including the current partial month, to produce a budgeted vs.
// spent vs. saved time series. Every call recomputes from scratch.
type GetBudgetTrendsUseCase struct {
	budgetRepo adapter.BudgetRepository
	spendUC    *budget.ComputeSpendingUseCase
	clock      adapter.Clock
}

// NewGetBudgetTrendsUseCase creates a new GetBudgetTrendsUseCase instance.
func NewGetBudgetTrendsUseCase(
	budgetRepo adapter.BudgetRepository,
	spendUC *budget.ComputeSpendingUseCase,
	clock adapter.Clock,
) *GetBudgetTrendsUseCase {
	return &GetBudgetTrendsUseCase{
		budgetRepo: budgetRepo,
		spendUC:    spendUC,
		clock:      clock,
	}
}

// Execute returns exactly Months trend points, oldest month first. Months are
// replayed with bounded parallel fan-out and reduced into a pre-sized slice so
// ordering never depends on scheduling.
func (uc *GetBudgetTrendsUseCase) Execute(
	ctx context.Context,
	input GetBudgetTrendsInput,
) (*GetBudgetTrendsOutput, error) {
	months := input.Months
	if months == 0 {
		months = DefaultTrendMonths
	}
	if months < 1 || months > maxTrendMonths {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthCount,
			"months must be between 1 and 24",
			domainerror.ErrInvalidMonthCount,
		)
	}

	now := uc.clock.Now()
	currentMonthStart, _ := budget.MonthWindow(now)

	points := make([]*entity.TrendPoint, months)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(monthFanOutLimit)
	for i := 0; i < months; i++ {
		i := i
		// Oldest month lands at index 0, the current partial month last.
		monthStart := currentMonthStart.AddDate(0, i-(months-1), 0)
		g.Go(func() error {
			point, err := uc.computeMonth(gctx, input.UserID, monthStart, now)
			if err != nil {
				return err
			}
			points[i] = point
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetBudgetTrendsOutput{Trends: points}, nil
}

// computeMonth aggregates one calendar month's budgets and spending.
func (uc *GetBudgetTrendsUseCase) computeMonth(
	ctx context.Context,
	userID uuid.UUID,
	monthStart, now time.Time,
) (*entity.TrendPoint, error) {
	monthEnd := monthStart.AddDate(0, 1, -1)

	budgets, err := uc.budgetRepo.FindByUserInWindow(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets for %s: %w", budget.MonthLabel(monthStart), err)
	}

	budgeted := decimal.Zero
	spent := decimal.Zero
	for _, b := range budgets {
		ws, err := uc.spendUC.Execute(ctx, b, now)
		if err != nil {
			return nil, err
		}
		budgeted = budgeted.Add(b.Amount)
		spent = spent.Add(ws.ActualSpent)
	}

	saved := budgeted.Sub(spent)
	var savingsRate float64
	if budgeted.IsPositive() {
		savingsRate, _ = saved.Div(budgeted).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &entity.TrendPoint{
		Month:       monthStart,
		PeriodLabel: monthStart.Format("Jan 2006"),
		Budgeted:    budgeted,
		Spent:       spent,
		Saved:       saved,
		SavingsRate: savingsRate,
	}, nil
}
