package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/conversor/internal/domain/models"
)

// RedisConfig holds connection settings for the Redis driver.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Redis is a QuoteCache shared between instances. Quotes are stored as
// JSON with a native Redis TTL.
type Redis struct {
	cli redis.UniversalClient
}

// NewRedis connects lazily; use Ping to check reachability.
func NewRedis(cfg RedisConfig) *Redis {
	return &Redis{cli: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})}
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(cli redis.UniversalClient) *Redis {
	return &Redis{cli: cli}
}

func (r *Redis) Get(ctx context.Context, from, to models.Currency) (models.Quote, bool, error) {
	b, err := r.cli.Get(ctx, Key(from, to)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Quote{}, false, nil
		}
		return models.Quote{}, false, fmt.Errorf("redis get: %w", err)
	}
	var q models.Quote
	if err := json.Unmarshal(b, &q); err != nil {
		return models.Quote{}, false, fmt.Errorf("redis decode: %w", err)
	}
	return q, true, nil
}

func (r *Redis) Set(ctx context.Context, q models.Quote, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("redis encode: %w", err)
	}
	if err := r.cli.Set(ctx, Key(q.From, q.To), b, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.cli.Ping(ctx).Err()
}

// Close releases the underlying connections.
func (r *Redis) Close() error {
	return r.cli.Close()
}
