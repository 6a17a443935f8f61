// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

const healthScoreKeyPrefix = "health_score:"

// redisSummaryCache implements the adapter.SummaryCache interface on Redis.
// Cache failures are logged and reported as misses so the engine can always
// fall back to recomputing.
type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache creates a new Redis-backed summary cache.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &redisSummaryCache{
		client: client,
		ttl:    ttl,
	}
}

// GetHealthScore returns the cached health score for a user, or (nil, false) on a miss.
func (c *redisSummaryCache) GetHealthScore(ctx context.Context, userID uuid.UUID) (*entity.HealthScore, bool) {
	raw, err := c.client.Get(ctx, healthScoreKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("health score cache read failed", "user_id", userID, "error", err)
		}
		return nil, false
	}

	var score entity.HealthScore
	if err := json.Unmarshal(raw, &score); err != nil {
		slog.Warn("health score cache entry corrupt", "user_id", userID, "error", err)
		return nil, false
	}
	return &score, true
}

// SetHealthScore stores the health score for a user with the configured TTL.
func (c *redisSummaryCache) SetHealthScore(ctx context.Context, userID uuid.UUID, score *entity.HealthScore) {
	raw, err := json.Marshal(score)
	if err != nil {
		slog.Warn("health score cache marshal failed", "user_id", userID, "error", err)
		return
	}

	if err := c.client.Set(ctx, healthScoreKey(userID), raw, c.ttl).Err(); err != nil {
		slog.Warn("health score cache write failed", "user_id", userID, "error", err)
	}
}

func healthScoreKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", healthScoreKeyPrefix, userID)
}
