package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func newTestBudget(userID uuid.UUID, amount string, scope entity.CategoryScope) *entity.Budget {
	return entity.NewBudget(
		userID,
		"Groceries",
		"",
		decimal.RequireFromString(amount),
		entity.BudgetPeriodMonth,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		scope,
		80,
		true,
	)
}

func expenseTx(userID uuid.UUID, amount string, day int, categoryID *uuid.UUID) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.RequireFromString(amount),
		Type:       entity.TransactionTypeExpense,
		CategoryID: categoryID,
	}
}

func TestComposeSpending(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("sums matching expenses and derives percentages", func(t *testing.T) {
		catID := uuid.New()
		b := newTestBudget(userID, "1000", entity.SpecificCategories([]uuid.UUID{catID}))

		result := ComposeSpending(b, []*entity.Transaction{
			expenseTx(userID, "300", 5, &catID),
			expenseTx(userID, "200", 10, &catID),
		}, now)

		if got := result.ActualSpent.String(); got != "500" {
			t.Errorf("expected spent 500, got %s", got)
		}
		if got := result.Remaining.String(); got != "500" {
			t.Errorf("expected remaining 500, got %s", got)
		}
		if result.PercentageUsed != 50 {
			t.Errorf("expected 50%% used, got %f", result.PercentageUsed)
		}
		if result.IsOverBudget {
			t.Error("expected budget not over")
		}
	})

	t.Run("ignores transactions outside the category scope", func(t *testing.T) {
		inScope := uuid.New()
		outOfScope := uuid.New()
		b := newTestBudget(userID, "1000", entity.SpecificCategories([]uuid.UUID{inScope}))

		result := ComposeSpending(b, []*entity.Transaction{
			expenseTx(userID, "100", 5, &inScope),
			expenseTx(userID, "900", 6, &outOfScope),
			expenseTx(userID, "50", 7, nil),
		}, now)

		if got := result.ActualSpent.String(); got != "100" {
			t.Errorf("expected spent 100, got %s", got)
		}
	})

	t.Run("all-categories scope includes uncategorized expenses", func(t *testing.T) {
		b := newTestBudget(userID, "1000", entity.AllCategories())

		result := ComposeSpending(b, []*entity.Transaction{
			expenseTx(userID, "100", 5, nil),
		}, now)

		if got := result.ActualSpent.String(); got != "100" {
			t.Errorf("expected spent 100, got %s", got)
		}
	})

	t.Run("zero amount budget reports zero percent used", func(t *testing.T) {
		b := newTestBudget(userID, "1000", entity.AllCategories())
		b.Amount = decimal.Zero

		result := ComposeSpending(b, []*entity.Transaction{
			expenseTx(userID, "100", 5, nil),
		}, now)

		if result.PercentageUsed != 0 {
			t.Errorf("expected 0%% used for zero-amount budget, got %f", result.PercentageUsed)
		}
		if result.IsOverBudget {
			t.Error("expected zero-amount budget not flagged over")
		}
	})

	t.Run("overspending yields negative remaining and over-budget flag", func(t *testing.T) {
		b := newTestBudget(userID, "1000", entity.AllCategories())

		result := ComposeSpending(b, []*entity.Transaction{
			expenseTx(userID, "1200", 5, nil),
		}, now)

		if got := result.Remaining.String(); got != "-200" {
			t.Errorf("expected remaining -200, got %s", got)
		}
		if result.PercentageUsed != 120 {
			t.Errorf("expected 120%% used, got %f", result.PercentageUsed)
		}
		if !result.IsOverBudget {
			t.Error("expected budget flagged over")
		}
	})

	t.Run("exactly at limit is not over budget", func(t *testing.T) {
		b := newTestBudget(userID, "1000", entity.AllCategories())

		result := ComposeSpending(b, []*entity.Transaction{
			expenseTx(userID, "1000", 5, nil),
		}, now)

		if result.IsOverBudget {
			t.Error("expected exactly-at-limit budget not flagged over")
		}
	})

	t.Run("days remaining counts whole days and never goes negative", func(t *testing.T) {
		b := newTestBudget(userID, "1000", entity.AllCategories())

		result := ComposeSpending(b, nil, now)
		if result.DaysRemaining != 16 {
			t.Errorf("expected 16 days remaining on March 15, got %d", result.DaysRemaining)
		}

		after := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
		result = ComposeSpending(b, nil, after)
		if result.DaysRemaining != 0 {
			t.Errorf("expected 0 days remaining after window, got %d", result.DaysRemaining)
		}
	})
}

func TestComputeSpendingUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("propagates repository errors instead of reporting zero spend", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		uc := NewComputeSpendingUseCase(&fakeTransactionRepo{err: repoErr})
		b := newTestBudget(userID, "1000", entity.AllCategories())

		_, err := uc.Execute(context.Background(), b, now)
		if err == nil {
			t.Fatal("expected error from failing repository")
		}
		if !errors.Is(err, repoErr) {
			t.Errorf("expected wrapped repository error, got %v", err)
		}
	})

	t.Run("composes spending from fetched transactions", func(t *testing.T) {
		uc := NewComputeSpendingUseCase(&fakeTransactionRepo{
			transactions: []*entity.Transaction{
				expenseTx(userID, "250", 10, nil),
			},
		})
		b := newTestBudget(userID, "1000", entity.AllCategories())

		result, err := uc.Execute(context.Background(), b, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := result.ActualSpent.String(); got != "250" {
			t.Errorf("expected spent 250, got %s", got)
		}
	})
}
