package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/conversor/internal/metrics"
	"github.com/guttosm/conversor/internal/middleware"
)

// RouterOptions tunes the middleware chain.
type RouterOptions struct {
	CORSOrigins    []string      // nil or ["*"] allows any origin
	RequestTimeout time.Duration // defaults to 10s
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler,
//     Metrics, CORS, RateLimiter, Timeout).
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Keeps the widget's original /cotacao and /historico routes.
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.Metrics(),
		middleware.CORS(opts.CORSOrigins),
		middleware.RateLimiter(),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Swagger / metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ─── Widget routes ────────────────────────────
	router.GET("/cotacao", handler.GetQuote)
	router.GET("/historico", handler.GetHistory)

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/cotacao", handler.GetQuote)
		v1.GET("/cotacao/recentes", handler.RecentQuotes)
		v1.GET("/historico", handler.GetHistory)
		v1.GET("/grafico", handler.GetChart)
		v1.GET("/conversao", handler.Convert)
		v1.GET("/painel", handler.GetPanel)
		v1.GET("/moedas", handler.ListCurrencies)
	}

	return router
}
