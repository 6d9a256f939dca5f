package limiter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Schmandi/HIRED-server/internal/config"
)

func newTestLimiter(t *testing.T, maxAttempts, windowSeconds int) (LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.LimiterConfig{Enabled: true, MaxAttempts: maxAttempts, WindowSeconds: windowSeconds}
	return NewRedisLimiter(client, cfg, zap.NewNop()), mr
}

func TestAllow_WithinLimit(t *testing.T) {
	t.Parallel()

	limiter, _ := newTestLimiter(t, 3, 60)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "alice", "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "alice", "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAllow_SeparateKeysPerClient(t *testing.T) {
	t.Parallel()

	limiter, _ := newTestLimiter(t, 1, 60)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "alice", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	// A different address or username gets its own window.
	allowed, err = limiter.Allow(ctx, "alice", "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "bob", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_WindowResets(t *testing.T) {
	t.Parallel()

	limiter, mr := newTestLimiter(t, 1, 60)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "alice", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "alice", "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	mr.FastForward(61 * time.Second)

	allowed, err = limiter.Allow(ctx, "alice", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_FailsOpenWhenRedisDown(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.LimiterConfig{Enabled: true, MaxAttempts: 1, WindowSeconds: 60}
	limiter := NewRedisLimiter(client, cfg, zap.NewNop())

	allowed, err := limiter.Allow(context.Background(), "alice", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNoopLimiter(t *testing.T) {
	t.Parallel()

	allowed, err := NewNoopLimiter().Allow(context.Background(), "anyone", "anywhere")
	require.NoError(t, err)
	assert.True(t, allowed)
}
