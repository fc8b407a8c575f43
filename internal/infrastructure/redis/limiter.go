package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window request counter keyed by caller
type Limiter struct {
	rdb    redis.Cmdable
	prefix string
}

// NewLimiter counts requests in rdb under keys starting with prefix
func NewLimiter(rdb redis.Cmdable, prefix string) *Limiter {
	if prefix == "" {
		prefix = "rate_limit"
	}
	return &Limiter{rdb: rdb, prefix: prefix}
}

// Allow records one request for key and reports how many remain in the
// current window. The counter is incremented and judged in one transaction,
// so concurrent callers never exceed limit. The first request of a window
// starts its expiry; requests over the limit still count.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (int, bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, true, fmt.Errorf("failed to update rate counter: %w", err)
	}

	count := int(incr.Val())
	if count > limit {
		return 0, false, nil
	}
	return limit - count, true, nil
}
