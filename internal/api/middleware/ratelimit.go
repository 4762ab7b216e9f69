package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/electriclarrys/shop-api/internal/api/metrics"
)

// AttemptLimiter counts attempts per key within a window. Implemented by
// the Redis fixed-window counter; stubbed in tests.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit throttles login attempts per client IP. Limiter errors
// fail open: a broken Redis must not lock everyone out of the shop.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), ip)
			if err != nil {
				log.Warn().Err(err).Str("ip", ip).Msg("login limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.LoginRateLimitedTotal.Inc()
				log.Warn().
					Str("ip", ip).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Msg("login rate limit exceeded")
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"too many login attempts from this IP, please try again later")
			}

			return next(c)
		}
	}
}
