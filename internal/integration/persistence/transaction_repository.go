// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// FindExpensesInWindow retrieves expense transactions dated within [start, end].
// A nil or empty categoryIDs slice applies no category filter.
func (r *transactionRepository) FindExpensesInWindow(
	ctx context.Context,
	userID uuid.UUID,
	categoryIDs []uuid.UUID,
	start, end time.Time,
) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("type = ?", string(entity.TransactionTypeExpense)).
		Where("date >= ? AND date <= ?", start, end)

	if len(categoryIDs) > 0 {
		query = query.Where("category_id IN ?", categoryIDs)
	}

	var transactionModels []model.TransactionModel
	if err := query.Order("date ASC, created_at ASC").Find(&transactionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find expenses: %w", err)
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// GetTotals returns summed income and expense amounts within [start, end].
func (r *transactionRepository) GetTotals(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) (*entity.TransactionTotals, error) {
	var result struct {
		IncomeTotal  decimal.Decimal `gorm:"column:income_total"`
		ExpenseTotal decimal.Decimal `gorm:"column:expense_total"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select(`
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) as income_total,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) as expense_total
		`).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", start, end).
		Where("deleted_at IS NULL").
		Scan(&result).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	return &entity.TransactionTotals{
		IncomeTotal:  result.IncomeTotal,
		ExpenseTotal: result.ExpenseTotal,
		NetTotal:     result.IncomeTotal.Sub(result.ExpenseTotal),
	}, nil
}

// GetCategoryExpenseTotals returns per-category expense sums within [start, end],
// ordered by total descending. Uncategorized expenses are reported under an
// empty category name.
func (r *transactionRepository) GetCategoryExpenseTotals(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]*entity.CategoryExpenseTotal, error) {
	var results []struct {
		CategoryID   *uuid.UUID      `gorm:"column:category_id"`
		CategoryName *string         `gorm:"column:category_name"`
		Total        decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select(`
			t.category_id,
			c.name as category_name,
			SUM(t.amount) as total
		`).
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Where("t.user_id = ?", userID).
		Where("t.type = ?", string(entity.TransactionTypeExpense)).
		Where("t.date >= ? AND t.date <= ?", start, end).
		Where("t.deleted_at IS NULL").
		Group("t.category_id, c.name").
		Order("total DESC").
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get category expense totals: %w", err)
	}

	totals := make([]*entity.CategoryExpenseTotal, len(results))
	for i, res := range results {
		name := ""
		if res.CategoryName != nil {
			name = *res.CategoryName
		}
		totals[i] = &entity.CategoryExpenseTotal{
			CategoryID:   res.CategoryID,
			CategoryName: name,
			Total:        res.Total,
		}
	}
	return totals, nil
}

// GetDateRange returns the date boundaries and count of the user's transactions.
func (r *transactionRepository) GetDateRange(
	ctx context.Context,
	userID uuid.UUID,
) (*entity.TransactionDateRange, error) {
	var result struct {
		OldestDate *time.Time `gorm:"column:oldest_date"`
		NewestDate *time.Time `gorm:"column:newest_date"`
		Total      int        `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("MIN(date) as oldest_date, MAX(date) as newest_date, COUNT(*) as total").
		Where("user_id = ?", userID).
		Where("deleted_at IS NULL").
		Scan(&result).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	return &entity.TransactionDateRange{
		OldestDate:        result.OldestDate,
		NewestDate:        result.NewestDate,
		TotalTransactions: result.Total,
	}, nil
}
