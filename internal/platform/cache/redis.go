package cache

import (
	"context"
	"fmt"
	"realestate_crud/internal/platform/config"
	"time"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis() (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cache.ConnectRedis: %w", err)
	}
	return rdb, nil
}

// LoginLimiter counts login attempts per username in a fixed window.
// The counter key expires with the window, so an idle username resets.
type LoginLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

func NewLoginLimiter(rdb *redis.Client, max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{rdb: rdb, max: max, window: window}
}

func (l *LoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	key := "login_attempts:" + username
	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("LoginLimiter.Allow: %w", err)
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("LoginLimiter.Allow: %w", err)
		}
	}
	return n <= int64(l.max), nil
}
