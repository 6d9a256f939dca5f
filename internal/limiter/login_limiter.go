// Package limiter bounds login attempts per client to slow credential
// stuffing. It is advisory: when Redis is unreachable the limiter fails
// open rather than blocking logins.
package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Schmandi/HIRED-server/internal/config"
)

// LoginLimiter answers whether another login attempt is allowed for a
// username/address pair within the current window.
type LoginLimiter interface {
	Allow(ctx context.Context, username, remoteAddr string) (bool, error)
}

type redisLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
	logger *zap.Logger
}

// NewRedisLimiter builds a fixed-window limiter on the given client.
func NewRedisLimiter(client *redis.Client, cfg config.LimiterConfig, logger *zap.Logger) LoginLimiter {
	return &redisLimiter{
		client: client,
		max:    cfg.MaxAttempts,
		window: cfg.Window(),
		logger: logger,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, username, remoteAddr string) (bool, error) {
	key := fmt.Sprintf("login_attempts:%s:%s", username, remoteAddr)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("login limiter unavailable, failing open", zap.Error(err))
		return true, nil
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
	return count <= int64(l.max), nil
}

type noopLimiter struct{}

// NewNoopLimiter always allows. Used when the limiter is disabled.
func NewNoopLimiter() LoginLimiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(context.Context, string, string) (bool, error) {
	return true, nil
}
