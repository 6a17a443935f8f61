package budget

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// fixedClock returns a constant time for deterministic window math.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeBudgetRepo is an in-memory BudgetRepository for use case tests.
type fakeBudgetRepo struct {
	mu      sync.Mutex
	budgets []*entity.Budget
	err     error
}

func (r *fakeBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.budgets = append(r.budgets, budget)
	return nil
}

func (r *fakeBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r *fakeBudgetRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) FindByUserInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Budget, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && b.IsActive && !b.StartDate.After(end) && !b.EndDate.Before(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) FindCoveringWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Budget, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && b.IsActive && b.StartDate.Equal(start) && b.EndDate.Equal(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.budgets {
		if b.ID == budget.ID {
			r.budgets[i] = budget
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}

func (r *fakeBudgetRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets {
		if b.ID == id {
			b.IsActive = false
			return nil
		}
	}
	return domainerror.ErrBudgetNotFound
}

// fakeTransactionRepo serves canned expense transactions for spend computations.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	err          error
}

func (r *fakeTransactionRepo) FindExpensesInWindow(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID != userID || tx.Type != entity.TransactionTypeExpense {
			continue
		}
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		if len(categoryIDs) > 0 {
			if tx.CategoryID == nil {
				continue
			}
			match := false
			for _, id := range categoryIDs {
				if *tx.CategoryID == id {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *fakeTransactionRepo) GetTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.TransactionTotals, error) {
	return &entity.TransactionTotals{}, r.err
}

func (r *fakeTransactionRepo) GetCategoryExpenseTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CategoryExpenseTotal, error) {
	return nil, r.err
}

func (r *fakeTransactionRepo) GetDateRange(ctx context.Context, userID uuid.UUID) (*entity.TransactionDateRange, error) {
	return &entity.TransactionDateRange{}, r.err
}
