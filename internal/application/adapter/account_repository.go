// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// AccountRepository defines the read-only interface the engine uses to
// query the external account store.
type AccountRepository interface {
	// FindActiveByUserID retrieves all active accounts for a given user.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)
}
