// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindActiveByUserID retrieves all active budgets for a given user.
func (r *budgetRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("start_date ASC, created_at ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(budgetModels), nil
}

// FindByUserInWindow retrieves active budgets whose window overlaps [start, end].
func (r *budgetRepository) FindByUserInWindow(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC, created_at ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(budgetModels), nil
}

// FindCoveringWindow retrieves active budgets whose window exactly matches [start, end].
func (r *budgetRepository) FindCoveringWindow(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Where("start_date = ? AND end_date = ?", start, end).
		Order("created_at ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(budgetModels), nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Save(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Deactivate marks a budget inactive without removing it.
func (r *budgetRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

func toEntities(budgetModels []model.BudgetModel) []*entity.Budget {
	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets
}
