package app

import (
	"context"
	"fmt"

	"github.com/guttosm/conversor/config"
	"github.com/guttosm/conversor/internal/cache"
)

// quoteCache is the driver chosen by CACHE_DRIVER plus what the app needs
// to ping and release it.
type quoteCache struct {
	cache.QuoteCache
	ping  func(ctx context.Context) error
	close func() error
}

// redisFactory is an indirection for unit testing.
var redisFactory = func(cfg config.CacheConfig) *cache.Redis {
	return cache.NewRedis(cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// newQuoteCache builds the configured current-quote cache.
func newQuoteCache(cfg config.CacheConfig) (*quoteCache, error) {
	switch cfg.Driver {
	case "", "memory":
		return &quoteCache{QuoteCache: cache.NewMemory()}, nil
	case "none":
		return &quoteCache{QuoteCache: cache.Nop{}}, nil
	case "redis":
		r := redisFactory(cfg)
		return &quoteCache{QuoteCache: r, ping: r.Ping, close: r.Close}, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
