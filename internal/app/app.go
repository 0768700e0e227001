package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/conversor/config"
	"github.com/guttosm/conversor/internal/api"
	"github.com/guttosm/conversor/internal/history"
	"github.com/guttosm/conversor/internal/logger"
	"github.com/guttosm/conversor/internal/provider"
	"github.com/guttosm/conversor/internal/service"
	"github.com/guttosm/conversor/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres() and builds the quotes repository.
//   - Builds the current-quote cache selected by CACHE_DRIVER.
//   - Creates the AwesomeAPI and TwelveData clients and the history normalizer.
//   - Wires the QuoteService, HTTP handler and router.
//   - Registers health and readiness checks (postgres, and redis when used).
//   - Provides a cleanup function to close resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	loc, err := cfg.History.Location()
	if err != nil {
		return nil, nil, err
	}

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	qc, err := newQuoteCache(cfg.Cache)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	awesome, twelve := NewProviders(cfg)

	svc := service.NewQuoteService(service.Options{
		Quotes:     awesome,
		Daily:      awesome,
		Intraday:   twelve,
		Cache:      qc.QuoteCache,
		CacheTTL:   cfg.Cache.TTL,
		Repo:       storage.NewQuotesRepository(db),
		Normalizer: history.NewNormalizer(loc),
	})

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, api.RouterOptions{
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: 2 * cfg.Upstream.Timeout,
	})

	// Register health and readiness checks
	checks := map[string]api.Check{"postgres": db.PingContext}
	if qc.ping != nil {
		checks["redis"] = qc.ping
	}
	api.NewHealthHandler(checks).Register(router)

	logger.L().Info().
		Str("cache", cfg.Cache.Driver).
		Str("history_tz", loc.String()).
		Bool("intraday_enabled", cfg.Upstream.TwelveDataAPIKey != "").
		Msg("application initialized")

	// Cleanup resources on shutdown
	cleanup := func() {
		if qc.close != nil {
			_ = qc.close()
		}
		_ = db.Close()
	}

	return router, cleanup, nil
}

// NewProviders builds the upstream clients from cfg.Upstream. Both share one
// HTTP client.
func NewProviders(cfg config.Config) (*provider.AwesomeAPI, *provider.TwelveData) {
	httpClient := provider.NewHTTPClient(cfg.Upstream.Timeout)
	return provider.NewAwesomeAPI(cfg.Upstream.AwesomeAPIURL, httpClient),
		provider.NewTwelveData(cfg.Upstream.TwelveDataURL, cfg.Upstream.TwelveDataAPIKey, httpClient)
}
