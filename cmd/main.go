package main

//
//  @title           conversor API
//  @version         1.0
//  @description     Currency conversion, quote history and chart series.
//  @termsOfService  https://github.com/guttosm/conversor
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/conversor
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        cotacao
//  @tag.description Current quotes and recorded snapshots
//
//  @tag.name        historico
//  @tag.description Raw upstream history
//
//  @tag.name        grafico
//  @tag.description Normalized chart series
//
//  @tag.name        health
//  @tag.description Liveness and readiness checks

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/conversor/config"
	_ "github.com/guttosm/conversor/docs" // swagger docs
	"github.com/guttosm/conversor/internal/app"
	"github.com/guttosm/conversor/internal/logger"
	"github.com/guttosm/conversor/internal/snapshot"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (DB, redis).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runSnapshot records the current quote of every pair in one batch.
func runSnapshot(ctx context.Context, cfg config.Config, pairsFlag string, parallel int) error {
	pairs, err := snapshot.ParsePairs(pairsFlag)
	if err != nil {
		return err
	}

	db, err := app.InitPostgres(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	awesome, _ := app.NewProviders(cfg)
	n, err := snapshot.Process(ctx, db, awesome, pairs, parallel)
	if err != nil {
		return err
	}
	logger.L().Info().Int("stored", n).Msg("snapshot completed successfully")
	return nil
}

// main is the entry point of the conversor application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API used by the converter widget.
//   - snapshot: Fetches the current quote of each --pairs entry and stores them.
//
// Flags:
//   - --mode:     Execution mode ("api" or "snapshot"). Default: "api".
//   - --pairs:    Comma separated FROM-TO pairs for snapshot mode. Default: "USD-BRL,EUR-BRL".
//   - --parallel: Concurrent upstream calls in snapshot mode (0=auto up to CPU, max 8).
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or snapshot")
	pairs := flag.String("pairs", "USD-BRL,EUR-BRL", "Comma separated FROM-TO pairs to snapshot")
	parallel := flag.Int("parallel", 0, "How many pairs to fetch concurrently (0=auto up to CPU, max 8)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "snapshot":
		logger.L().Info().Str("pairs", *pairs).Msg("running snapshot")

		sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		err := runSnapshot(sigCtx, config.AppConfig, *pairs, *parallel)
		stop()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("snapshot failed")
		}

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
