package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSlidingWindow(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := Connect(ctx, addr, "", 0)
	require.NoError(t, err)
	defer client.Close()

	rl := NewRedisSlidingWindow(client, "test:login:", 5, time.Minute)
	key := uuid.NewString()
	defer client.Del(ctx, rl.key(key))

	for i := 0; i < 5; i++ {
		ok, err := rl.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := rl.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := client.ZCard(ctx, rl.key(key)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestRedisKeyPrefix(t *testing.T) {
	rl := NewRedisSlidingWindow(nil, "", 5, time.Minute)
	assert.Equal(t, "ratelimit:1.2.3.4", rl.key("1.2.3.4"))
}
