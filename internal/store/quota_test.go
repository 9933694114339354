package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupQuotaStore(t *testing.T, dailyLimit int, cooldown time.Duration) (*miniredis.Miniredis, *QuotaStore) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return mr, NewQuotaStore(client, dailyLimit, cooldown, zap.NewNop())
}

func TestQuotaAcquire_FirstUse(t *testing.T) {
	_, store := setupQuotaStore(t, 10, 30*time.Second)

	err := store.Acquire(context.Background(), "client-1")
	require.NoError(t, err)

	usage, err := store.Usage(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, 1, usage)
}

func TestQuotaAcquire_Cooldown(t *testing.T) {
	mr, store := setupQuotaStore(t, 10, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, store.Acquire(ctx, "client-1"))

	// 冷却窗口内第二次请求被拒
	err := store.Acquire(ctx, "client-1")
	assert.ErrorIs(t, err, ErrCooldown)

	// 冷却过期后恢复
	mr.FastForward(31 * time.Second)
	err = store.Acquire(ctx, "client-1")
	require.NoError(t, err)

	usage, err := store.Usage(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, 2, usage)
}

func TestQuotaAcquire_DailyLimit(t *testing.T) {
	mr, store := setupQuotaStore(t, 3, time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Acquire(ctx, "client-1"))
		mr.FastForward(2 * time.Second)
	}

	err := store.Acquire(ctx, "client-1")
	assert.ErrorIs(t, err, ErrLimitExceeded)
}

func TestQuotaAcquire_ClientsIsolated(t *testing.T) {
	_, store := setupQuotaStore(t, 1, time.Second)
	ctx := context.Background()

	require.NoError(t, store.Acquire(ctx, "client-1"))
	require.NoError(t, store.Acquire(ctx, "client-2"))

	usage1, err := store.Usage(ctx, "client-1")
	require.NoError(t, err)
	usage2, err := store.Usage(ctx, "client-2")
	require.NoError(t, err)
	assert.Equal(t, 1, usage1)
	assert.Equal(t, 1, usage2)
}

func TestQuotaUsage_NoActivity(t *testing.T) {
	_, store := setupQuotaStore(t, 10, time.Second)

	usage, err := store.Usage(context.Background(), "client-unknown")
	require.NoError(t, err)
	assert.Equal(t, 0, usage)
}
