package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowCounter provides shared fixed-window counters backed by Redis, so
// rate-limit state survives restarts and is consistent across instances.
// Key format: ratelimit:<client>:<window_index>
type WindowCounter struct {
	client *redis.Client
}

// NewWindowCounter wraps the given Redis client.
func NewWindowCounter(client *redis.Client) *WindowCounter {
	return &WindowCounter{client: client}
}

// Incr increments the counter for key, setting its expiry on first use, and
// returns the new count.
func (c *WindowCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("window incr: %w", err)
	}
	return incr.Val(), nil
}
