package middleware

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/commutemap/internal/pkg/logger"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// Config holds configuration for the middleware
type Config struct {
	Logger      *logger.ZapLogger
	Redis       *redis.Client // nil disables rate limiting
	RateLimit   int
	RatePeriod  time.Duration
	ServiceName string
}

// Middleware builds the HTTP middleware chain of a service
type Middleware struct {
	config Config
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(config Config) *Middleware {
	return &Middleware{config: config}
}

// Chain returns request id, panic recovery and rate limiting in the order
// they have to run.
func (m *Middleware) Chain() []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{RequestID()}
	if m.config.Logger != nil {
		chain = append(chain, PanicRecoveryWithZapMiddleware(m.config.Logger))
	}
	if m.config.Redis != nil && m.config.RateLimit > 0 {
		chain = append(chain, IPRateLimiter(m.config.ServiceName, m.config.RateLimit, m.config.RatePeriod, m.config.Redis))
	}
	return chain
}
