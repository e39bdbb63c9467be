package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	statsCachePrefix = "dashboard:stats:"
	statsCacheTTL    = 60 * time.Second
)

// StatsCache caches computed dashboard statistics per tenant for a short
// window so repeated dashboard loads do not hit the database.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats payload for the user, or (nil, false) on
// miss. Errors are treated as misses so callers degrade to a direct
// query.
func (c *StatsCache) Get(ctx context.Context, userID uint, out interface{}) bool {
	data, err := c.client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

// Set stores the stats payload for the user with a 60 second TTL.
func (c *StatsCache) Set(ctx context.Context, userID uint, stats interface{}) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := c.client.Set(ctx, statsKey(userID), data, statsCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache stats: %w", err)
	}
	return nil
}

// Invalidate drops the cached stats for the user.
func (c *StatsCache) Invalidate(ctx context.Context, userID uint) {
	c.client.Del(ctx, statsKey(userID))
}

func statsKey(userID uint) string {
	return statsCachePrefix + strconv.FormatUint(uint64(userID), 10)
}
