package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/AbdelmonemElsawy/fyyur/internal/config"
)

// RateLimit returns a fixed-window per-IP rate limiter backed by redis.
// The counter key expires with the window, so a client gets cfg.Limit
// requests per window.  With limiting disabled or no redis client it is a
// pass-through, and a redis failure lets the request through rather than
// rejecting it.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s", cfg.Prefix, c.RealIP())

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if n > int64(cfg.Limit) {
				retry := cfg.Window.Seconds()
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry)))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error": "rate limit exceeded",
					"code":  "rate_limited",
				})
			}
			return next(c)
		}
	}
}
