package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Cache key prefix and TTL for per-user blocked-URL counts.
//
// Postgres stays the source of truth: the user listing reads counts through
// this cache and backfills misses from a grouped COUNT query. Writes to
// blocked_urls invalidate the owning user's entry.
const (
	countKeyPrefix = "blocked_count:"

	// DefaultCountTTL is the TTL for cached counts.
	DefaultCountTTL = 24 * time.Hour
)

// countKey builds the Redis key for a user's blocked-URL count.
func countKey(userID string) string {
	return countKeyPrefix + userID
}

// GetBlockedURLCounts retrieves cached counts for the given users in one
// round trip. Users without a cached value are absent from the result map.
func (c *Cache) GetBlockedURLCounts(ctx context.Context, userIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = countKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget failed: %w", err)
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue // nil = miss
		}
		count, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		counts[userIDs[i]] = count
	}

	return counts, nil
}

// SetBlockedURLCount stores a user's count with the default TTL.
func (c *Cache) SetBlockedURLCount(ctx context.Context, userID string, count int64) error {
	if err := c.client.Set(ctx, countKey(userID), count, DefaultCountTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache count: %w", err)
	}
	return nil
}

// SetBlockedURLCounts stores multiple counts in a single pipeline.
func (c *Cache) SetBlockedURLCounts(ctx context.Context, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for userID, count := range counts {
		pipe.Set(ctx, countKey(userID), count, DefaultCountTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache counts: %w", err)
	}
	return nil
}

// InvalidateBlockedURLCount drops a user's cached count after a write to
// their deny list.
func (c *Cache) InvalidateBlockedURLCount(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, countKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate count: %w", err)
	}
	return nil
}
