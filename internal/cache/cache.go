// Package cache stores current quotes for a short TTL. History is never
// cached.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/conversor/internal/domain/models"
)

// QuoteCache is a TTL cache of current quotes keyed by currency pair.
type QuoteCache interface {
	Get(ctx context.Context, from, to models.Currency) (q models.Quote, ok bool, err error)
	Set(ctx context.Context, q models.Quote, ttl time.Duration) error
}

// Key returns the cache key for a pair, e.g. "quote:USD-BRL".
func Key(from, to models.Currency) string {
	return fmt.Sprintf("quote:%s-%s", from, to)
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, models.Currency, models.Currency) (models.Quote, bool, error) {
	return models.Quote{}, false, nil
}

func (Nop) Set(context.Context, models.Quote, time.Duration) error { return nil }
