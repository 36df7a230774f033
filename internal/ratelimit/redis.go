// Package ratelimit provides fixed-window and token-bucket limiters keyed by caller.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindow increments the counter and arms its expiry in one round trip.
// The expiry is only set by the first hit so the window does not slide.
var fixedWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RedisLimiter allows at most limit hits per key within each window.
// State lives in Redis so all server replicas share it.
type RedisLimiter struct {
	client redis.Scripter
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client redis.Scripter, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: int64(limit), window: window}
}

// Allow records a hit for key and reports whether it is within the limit.
// When Redis cannot be reached Allow returns true together with the error.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := fixedWindow.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return true, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return n <= l.limit, nil
}
