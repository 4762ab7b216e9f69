package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginLimitPrefix = "loginlimit:"

// LoginLimiter is a fixed-window counter over Redis. Each key gets
// `limit` attempts per `window`; the counter expires with the window so
// stale entries clean themselves up.
type LoginLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewLoginLimiter(client *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow records an attempt for key and reports whether it is within the
// limit. The expiry is set only on the first attempt of a window, so
// the window is anchored to the first attempt rather than sliding.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := loginLimitPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("login limiter incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("login limiter expire: %w", err)
		}
	}

	return count <= int64(l.limit), nil
}
