package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/conversor/internal/cache"
	"github.com/guttosm/conversor/internal/domain/models"
	"github.com/guttosm/conversor/internal/history"
	"github.com/guttosm/conversor/internal/logger"
	"github.com/guttosm/conversor/internal/metrics"
	"github.com/guttosm/conversor/internal/storage"
)

var (
	// ErrInvalidCurrency is returned for codes outside the catalogue.
	ErrInvalidCurrency = errors.New("unsupported currency")
	// ErrInvalidAmount is returned for negative or non-finite amounts.
	ErrInvalidAmount = errors.New("invalid amount")
)

// identitySource marks quotes synthesized for same-currency pairs.
const identitySource = "identity"

// QuoteProvider returns the current rate for a pair.
type QuoteProvider interface {
	Last(ctx context.Context, from, to models.Currency) (models.Quote, error)
}

// DailyHistoryProvider returns daily closes with epoch-second timestamps.
type DailyHistoryProvider interface {
	Daily(ctx context.Context, from, to models.Currency, days int) ([]models.RawHistoryPoint, error)
}

// IntradayHistoryProvider returns hourly closes with calendar timestamps.
type IntradayHistoryProvider interface {
	TimeSeries(ctx context.Context, from, to models.Currency) ([]models.RawHistoryPoint, error)
}

// QuoteService defines the converter's business operations.
type QuoteService interface {
	GetQuote(ctx context.Context, from, to models.Currency) (models.Quote, error)
	GetHistory(ctx context.Context, from, to models.Currency, period models.Period) ([]models.RawHistoryPoint, error)
	GetChart(ctx context.Context, from, to models.Currency, period models.Period) ([]models.NormalizedPoint, error)
	Convert(ctx context.Context, from, to models.Currency, amount float64) (models.Conversion, error)
	GetPanel(ctx context.Context, from, to models.Currency, period models.Period, amount float64) (*Panel, error)
	RecentQuotes(ctx context.Context, from, to models.Currency, limit int) ([]models.Quote, error)
}

// Panel bundles everything the converter screen shows for one pair.
type Panel struct {
	Quote      models.Quote
	Conversion models.Conversion
	Period     models.Period
	Chart      []models.NormalizedPoint
}

// Options wires a QuoteService.
//
// Fields:
//   - Quotes, Daily, Intraday: upstream providers (required).
//   - Cache/CacheTTL: current-quote cache; nil means no caching.
//   - Repo: snapshot storage; nil disables recording and RecentQuotes.
//   - Normalizer: history normalizer; nil uses time.Local and the wall clock.
type Options struct {
	Quotes     QuoteProvider
	Daily      DailyHistoryProvider
	Intraday   IntradayHistoryProvider
	Cache      cache.QuoteCache
	CacheTTL   time.Duration
	Repo       storage.QuotesRepository
	Normalizer *history.Normalizer
}

type quoteService struct {
	quotes     QuoteProvider
	daily      DailyHistoryProvider
	intraday   IntradayHistoryProvider
	cache      cache.QuoteCache
	cacheTTL   time.Duration
	repo       storage.QuotesRepository
	normalizer *history.Normalizer
}

func NewQuoteService(opts Options) QuoteService {
	s := &quoteService{
		quotes:     opts.Quotes,
		daily:      opts.Daily,
		intraday:   opts.Intraday,
		cache:      opts.Cache,
		cacheTTL:   opts.CacheTTL,
		repo:       opts.Repo,
		normalizer: opts.Normalizer,
	}
	if s.cache == nil {
		s.cache = cache.Nop{}
	}
	if s.normalizer == nil {
		s.normalizer = history.NewNormalizer(nil)
	}
	return s
}

func validatePair(from, to models.Currency) error {
	if !from.IsSupported() {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, from)
	}
	if !to.IsSupported() {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, to)
	}
	return nil
}

// GetQuote serves from cache when possible; fresh quotes are cached and
// recorded. Cache and storage failures are logged and never fail the call.
func (s *quoteService) GetQuote(ctx context.Context, from, to models.Currency) (models.Quote, error) {
	if err := validatePair(from, to); err != nil {
		return models.Quote{}, err
	}
	if from == to {
		return models.Quote{From: from, To: to, Bid: "1", Rate: 1, Source: identitySource, FetchedAt: time.Now().UTC()}, nil
	}

	q, ok, err := s.cache.Get(ctx, from, to)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		logger.L().Warn().Err(err).Str("pair", cache.Key(from, to)).Msg("quote cache read failed")
	case ok:
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return q, nil
	default:
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	q, err = s.quotes.Last(ctx, from, to)
	if err != nil {
		return models.Quote{}, fmt.Errorf("fetch quote %s-%s: %w", from, to, err)
	}

	if err := s.cache.Set(ctx, q, s.cacheTTL); err != nil {
		logger.L().Warn().Err(err).Str("pair", cache.Key(from, to)).Msg("quote cache write failed")
	}
	if s.repo != nil {
		if err := s.repo.InsertQuote(context.WithoutCancel(ctx), q); err != nil {
			logger.L().Warn().Err(err).Str("pair", cache.Key(from, to)).Msg("quote snapshot not recorded")
		}
	}
	return q, nil
}

// GetHistory returns the raw upstream series: 1D comes from the intraday
// provider, longer periods from the daily one. A same-currency pair has no
// upstream series and yields an empty one.
func (s *quoteService) GetHistory(ctx context.Context, from, to models.Currency, period models.Period) ([]models.RawHistoryPoint, error) {
	if err := validatePair(from, to); err != nil {
		return nil, err
	}
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPeriod, period)
	}
	if from == to {
		return []models.RawHistoryPoint{}, nil
	}

	var (
		pts []models.RawHistoryPoint
		err error
	)
	if period == models.Period1D {
		pts, err = s.intraday.TimeSeries(ctx, from, to)
	} else {
		pts, err = s.daily.Daily(ctx, from, to, period.Days())
	}
	if err != nil {
		return nil, fmt.Errorf("fetch history %s-%s %s: %w", from, to, period, err)
	}
	return pts, nil
}

// GetChart is GetHistory followed by normalization.
func (s *quoteService) GetChart(ctx context.Context, from, to models.Currency, period models.Period) ([]models.NormalizedPoint, error) {
	raw, err := s.GetHistory(ctx, from, to, period)
	if err != nil {
		return nil, err
	}
	return s.normalizer.Normalize(raw, period), nil
}

func (s *quoteService) Convert(ctx context.Context, from, to models.Currency, amount float64) (models.Conversion, error) {
	if err := validateAmount(amount); err != nil {
		return models.Conversion{}, err
	}
	q, err := s.GetQuote(ctx, from, to)
	if err != nil {
		return models.Conversion{}, err
	}
	return convert(q, amount), nil
}

// GetPanel fetches the quote and the chart concurrently. A chart failure
// degrades to an empty series; a quote failure fails the panel.
func (s *quoteService) GetPanel(ctx context.Context, from, to models.Currency, period models.Period, amount float64) (*Panel, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validatePair(from, to); err != nil {
		return nil, err
	}
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPeriod, period)
	}

	var (
		quote models.Quote
		chart []models.NormalizedPoint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.GetQuote(gctx, from, to)
		if err != nil {
			return err
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		pts, err := s.GetChart(gctx, from, to, period)
		if err != nil {
			logger.L().Warn().Err(err).Str("pair", cache.Key(from, to)).Str("period", period.String()).Msg("history unavailable, returning empty chart")
			pts = []models.NormalizedPoint{}
		}
		chart = pts
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Panel{
		Quote:      quote,
		Conversion: convert(quote, amount),
		Period:     period,
		Chart:      chart,
	}, nil
}

func (s *quoteService) RecentQuotes(ctx context.Context, from, to models.Currency, limit int) ([]models.Quote, error) {
	if err := validatePair(from, to); err != nil {
		return nil, err
	}
	if s.repo == nil {
		return []models.Quote{}, nil
	}
	return s.repo.ListRecent(ctx, from, to, limit)
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return nil
}

func convert(q models.Quote, amount float64) models.Conversion {
	return models.Conversion{
		From:   q.From,
		To:     q.To,
		Amount: amount,
		Rate:   q.Rate,
		Result: amount * q.Rate,
	}
}
