package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/eshop/internal/adapters/http/middleware"
)

// RateLimiter counts hits per key in fixed windows. The first hit of a
// window sets its expiry.
type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) *RateLimiter {
	return &RateLimiter{client: client}
}

var _ middleware.RateLimiter = (*RateLimiter)(nil)

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (middleware.RateLimitResult, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	var incr *goredis.IntCmd
	var ttl *goredis.DurationCmd
	_, err := r.client.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, window)
		ttl = pipe.PTTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		return middleware.RateLimitResult{}, err
	}

	count := int(incr.Val())
	result := middleware.RateLimitResult{
		Allowed:   count <= limit,
		Remaining: max(limit-count, 0),
	}
	if !result.Allowed {
		result.RetryAfter = ttl.Val()
		if result.RetryAfter <= 0 {
			result.RetryAfter = window
		}
	}
	return result, nil
}
