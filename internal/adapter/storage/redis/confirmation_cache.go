package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pos-settlement/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ConfirmationCache implements ports.ConfirmationCache: the fast path for
// repeated confirms of an already confirmed attempt.
type ConfirmationCache struct {
	client *goredis.Client
	prefix string
}

// NewConfirmationCache creates a new Redis-backed confirmation cache.
func NewConfirmationCache(client *goredis.Client) *ConfirmationCache {
	return &ConfirmationCache{
		client: client,
		prefix: "idempotency:",
	}
}

// Get returns the cached confirmation of an attempt, or nil, nil on a miss.
func (c *ConfirmationCache) Get(ctx context.Context, attemptID uuid.UUID) (*domain.Confirmation, error) {
	raw, err := c.client.Get(ctx, c.prefix+domain.BuildConfirmationKey(attemptID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis confirmation get: %w", err)
	}
	var conf domain.Confirmation
	if err := json.Unmarshal(raw, &conf); err != nil {
		return nil, fmt.Errorf("unmarshal confirmation: %w", err)
	}
	return &conf, nil
}

// Set caches a confirmation with TTL.
func (c *ConfirmationCache) Set(ctx context.Context, conf *domain.Confirmation, ttl time.Duration) error {
	payload, err := json.Marshal(conf)
	if err != nil {
		return fmt.Errorf("marshal confirmation: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+domain.BuildConfirmationKey(conf.AttemptID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis confirmation set: %w", err)
	}
	return nil
}
