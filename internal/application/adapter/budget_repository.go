// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindActiveByUserID retrieves all active budgets for a given user.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindByUserInWindow retrieves active budgets whose window overlaps [start, end].
	FindByUserInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Budget, error)

	// FindCoveringWindow retrieves active budgets whose window exactly matches [start, end].
	FindCoveringWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Deactivate marks a budget inactive without removing it.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
