package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/conversor/internal/domain/models"
	"github.com/guttosm/conversor/internal/logger"
	"github.com/guttosm/conversor/internal/storage"
)

const maxParallel = 8

// ErrInvalidPair is returned by ParsePairs for malformed or unsupported pairs.
var ErrInvalidPair = errors.New("invalid currency pair")

// Fetcher returns the current quote of a pair straight from upstream.
type Fetcher interface {
	Last(ctx context.Context, from, to models.Currency) (models.Quote, error)
}

// Store persists a batch of quotes.
type Store interface {
	InsertQuotesBatch(ctx context.Context, quotes []models.Quote) error
}

// Pair is one FROM-TO currency pair to snapshot.
type Pair struct {
	From models.Currency
	To   models.Currency
}

func (p Pair) String() string { return string(p.From) + "-" + string(p.To) }

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) Store {
	return storage.NewQuotesRepository(db)
}

// ParsePairs reads a comma separated list such as "USD-BRL,eur-brl".
// Codes are case-insensitive, duplicates are collapsed and same-currency
// pairs are rejected.
func ParsePairs(s string) ([]Pair, error) {
	var (
		out  []Pair
		seen = map[Pair]bool{}
	)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		from, to, ok := strings.Cut(item, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q (want FROM-TO)", ErrInvalidPair, item)
		}
		p := Pair{From: models.NormalizeCurrency(from), To: models.NormalizeCurrency(to)}
		if !p.From.IsSupported() || !p.To.IsSupported() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPair, item)
		}
		if p.From == p.To {
			return nil, fmt.Errorf("%w: %q has the same currency on both sides", ErrInvalidPair, item)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no pairs given", ErrInvalidPair)
	}
	return out, nil
}

// Process snapshots pairs into the quotes table behind db.
//
//   - db: open *sql.DB (PostgreSQL).
//   - parallel: concurrent upstream calls; 0 means min(NumCPU, 8).
func Process(ctx context.Context, db *sql.DB, fetcher Fetcher, pairs []Pair, parallel int) (int, error) {
	// use indirection to allow tests to swap repository constructor
	return Run(ctx, fetcher, repoCtor(db), pairs, parallel)
}

// Run fetches the current quote of every pair concurrently and stores them
// in one batch. The first failed fetch cancels the rest and nothing is
// stored. It returns how many quotes were stored.
func Run(ctx context.Context, fetcher Fetcher, store Store, pairs []Pair, parallel int) (int, error) {
	if len(pairs) == 0 {
		return 0, nil
	}

	limit := clampParallel(parallel)
	logger.L().Info().Int("pairs", len(pairs)).Int("max_parallel", limit).Msg("snapshot start")
	start := time.Now()

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, limit)
	quotes := make([]models.Quote, len(pairs))

	for i, p := range pairs {
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			// a fetch already failed; stop scheduling and let Wait report it
		}
		if gctx.Err() != nil {
			break
		}

		i, p := i, p
		g.Go(func() error {
			defer func() { <-sem }()
			q, err := fetcher.Last(gctx, p.From, p.To)
			if err != nil {
				logger.L().Error().Str("pair", p.String()).Err(err).Msg("snapshot fetch failed")
				return fmt.Errorf("pair %s: %w", p, err)
			}
			quotes[i] = q
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := store.InsertQuotesBatch(ctx, quotes); err != nil {
		return 0, fmt.Errorf("store snapshot: %w", err)
	}

	logger.L().Info().Int("stored", len(quotes)).Dur("elapsed", time.Since(start)).Msg("snapshot done")
	return len(quotes), nil
}

// clampParallel defaults to min(NumCPU, maxParallel) and caps explicit values.
func clampParallel(parallel int) int {
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	if parallel > maxParallel {
		parallel = maxParallel
	}
	if parallel < 1 {
		parallel = 1
	}
	return parallel
}
