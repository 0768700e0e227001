package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/conversor/internal/domain/models"
)

func unreachableRedis() *Redis {
	return NewRedisWithClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	}))
}

func TestRedis_UnreachableReturnsErrors(t *testing.T) {
	r := unreachableRedis()
	defer func() { _ = r.Close() }()
	ctx := context.Background()

	_, ok, err := r.Get(ctx, "USD", "BRL")
	assert.False(t, ok)
	require.Error(t, err)

	require.Error(t, r.Set(ctx, models.Quote{From: "USD", To: "BRL", Bid: "5"}, time.Minute))
	require.Error(t, r.Ping(ctx))
}

func TestRedis_ZeroTTLSkipsWrite(t *testing.T) {
	r := unreachableRedis()
	defer func() { _ = r.Close() }()

	// no round-trip happens, so the unreachable server does not matter
	require.NoError(t, r.Set(context.Background(), models.Quote{From: "USD", To: "BRL"}, 0))
}
