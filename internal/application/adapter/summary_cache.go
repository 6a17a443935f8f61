// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// SummaryCache caches expensive derived summaries for a short TTL. A cache
// failure is never an error to the caller; implementations log and report a
// miss instead.
type SummaryCache interface {
	// GetHealthScore returns the cached health score for a user, or (nil, false)
	// on a miss.
	GetHealthScore(ctx context.Context, userID uuid.UUID) (*entity.HealthScore, bool)

	// SetHealthScore stores the health score for a user with the configured TTL.
	SetHealthScore(ctx context.Context, userID uuid.UUID, score *entity.HealthScore)
}
