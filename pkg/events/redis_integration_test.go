//go:build integration
// +build integration

package events

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redisContainer "github.com/testcontainers/testcontainers-go/modules/redis"
)

// setupRedisContainer starts a Redis container and returns a connected client.
// The container is terminated when the test completes.
func setupRedisContainer(t testing.TB) *redis.Client {
	ctx := context.Background()

	container, err := redisContainer.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Redis container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint, DB: 1})
	t.Cleanup(func() { _ = client.Close() })

	_, err = client.Ping(ctx).Result()
	require.NoError(t, err)

	return client
}

func TestRedisStreamSink_Integration(t *testing.T) {
	client := setupRedisContainer(t)
	ctx := context.Background()

	sink := NewRedisStreamSink(client, RedisStreamConfig{
		Stream:         "test:events",
		MaxLen:         1000,
		IdempotencyTTL: time.Minute,
	})
	require.NoError(t, sink.Ping(ctx))

	t.Run("appends and reads back", func(t *testing.T) {
		require.NoError(t, sink.Append(ctx, testEnvelope("a")))
		require.NoError(t, sink.Append(ctx, testEnvelope("b")))

		got, err := sink.ReadRange(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].IdempotencyKey)
		assert.Equal(t, "b", got[1].IdempotencyKey)
		assert.JSONEq(t, `{"index":0,"score":59,"grade":"F"}`, string(got[0].Payload))
		assert.True(t, got[0].Timestamp.Equal(testEnvelope("a").Timestamp))
	})

	t.Run("duplicate keys are dropped", func(t *testing.T) {
		require.NoError(t, sink.Append(ctx, testEnvelope("a")))

		n, err := client.XLen(ctx, "test:events").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		ttl, err := client.TTL(ctx, "test:events:idem:a").Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		require.ErrorIs(t, sink.Append(cctx, testEnvelope("c")), ErrRedisUnavailable)
	})
}
