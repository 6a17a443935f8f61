// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the read-only interface the engine uses to
// query the external transaction store.
type TransactionRepository interface {
	// FindExpensesInWindow retrieves expense transactions dated within [start, end].
	// A nil categoryIDs slice applies no category filter.
	FindExpensesInWindow(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// GetTotals returns summed income and expense amounts within [start, end].
	GetTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.TransactionTotals, error)

	// GetCategoryExpenseTotals returns per-category expense sums within [start, end],
	// ordered by total descending.
	GetCategoryExpenseTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.CategoryExpenseTotal, error)

	// GetDateRange returns the date boundaries and count of the user's transactions.
	GetDateRange(ctx context.Context, userID uuid.UUID) (*entity.TransactionDateRange, error)
}
