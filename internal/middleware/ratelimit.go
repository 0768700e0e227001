package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/conversor/internal/domain/dto"
)

// client tracks one IP inside its current fixed window.
type client struct {
	windowStart time.Time
	count       int
}

// In-memory limiter state, per instance.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 60
	rateLimiterLock sync.Mutex
)

// SetRateLimit changes the allowance for subsequent requests. Values <= 0
// are ignored.
func SetRateLimit(requests int, per time.Duration) {
	rateLimiterLock.Lock()
	defer rateLimiterLock.Unlock()
	if requests > 0 {
		limit = requests
	}
	if per > 0 {
		window = per
	}
}

// RateLimiter limits each client IP to `limit` requests per fixed `window`
// (default 60 per minute). Exceeding it returns 429 with Retry-After set to
// the seconds left in the window.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter())
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) >= window {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > limit
		retryAfter := window - now.Sub(cl.windowStart)
		evictExpired(now)
		rateLimiterLock.Unlock()

		if exceeded {
			secs := int(retryAfter.Seconds())
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}

		c.Next()
	}
}

// evictExpired drops idle clients once the map grows; caller holds the lock.
func evictExpired(now time.Time) {
	if len(clients) < 1024 {
		return
	}
	for ip, cl := range clients {
		if now.Sub(cl.windowStart) >= window {
			delete(clients, ip)
		}
	}
}
