// Package ratelimit caps how many issues a citizen may submit per day.
// Counters live in Redis with a 24h TTL set on the first increment; the
// limiter sits outside the record store's durability boundary.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "issue_limit"

// Limiter enforces a per-identity daily submission cap.
type Limiter struct {
	client *redis.Client
	limit  int
}

// Result reports the outcome of an Allow check.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
}

// NewLimiter builds a limiter. A nil client or non-positive limit disables
// enforcement.
func NewLimiter(client *redis.Client, limit int) *Limiter {
	return &Limiter{client: client, limit: limit}
}

// Allow increments the caller's daily counter and reports whether the
// submission may proceed.
func (l *Limiter) Allow(ctx context.Context, identity string) (Result, error) {
	if l == nil || l.client == nil || l.limit <= 0 {
		return Result{Allowed: true}, nil
	}

	key := fmt.Sprintf("%s:%s", keyPrefix, identity)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("increment submission count: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, 24*time.Hour).Err(); err != nil {
			return Result{}, fmt.Errorf("set submission ttl: %w", err)
		}
	}
	if count > int64(l.limit) {
		ttl, _ := l.client.TTL(ctx, key).Result()
		return Result{Allowed: false, RetryAfter: ttl}, nil
	}
	return Result{Allowed: true}, nil
}
