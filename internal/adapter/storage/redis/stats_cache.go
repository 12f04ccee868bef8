package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pos-settlement/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// StatsPeriods are the dashboard periods cached per store.
var StatsPeriods = []string{"day", "week", "month", "all"}

// StatsCache implements ports.StatsCache.
type StatsCache struct {
	client *goredis.Client
	prefix string
}

// NewStatsCache creates a new Redis-backed stats cache.
func NewStatsCache(client *goredis.Client) *StatsCache {
	return &StatsCache{
		client: client,
		prefix: "stats:",
	}
}

func (c *StatsCache) key(storeID, period string) string {
	return c.prefix + storeID + ":" + period
}

// Get returns cached stats, or nil, nil on a miss.
func (c *StatsCache) Get(ctx context.Context, storeID, period string) (*ports.SettlementStats, error) {
	raw, err := c.client.Get(ctx, c.key(storeID, period)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis stats get: %w", err)
	}
	var stats ports.SettlementStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	return &stats, nil
}

// Set caches stats with TTL.
func (c *StatsCache) Set(ctx context.Context, storeID, period string, stats *ports.SettlementStats, ttl time.Duration) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := c.client.Set(ctx, c.key(storeID, period), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis stats set: %w", err)
	}
	return nil
}

// Invalidate drops every cached period of a store.
func (c *StatsCache) Invalidate(ctx context.Context, storeID string) error {
	keys := make([]string, 0, len(StatsPeriods))
	for _, p := range StatsPeriods {
		keys = append(keys, c.key(storeID, p))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis stats invalidate: %w", err)
	}
	return nil
}
