package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// AuthAttemptsPerMinute is the sustained rate of credential submissions allowed per client IP.
const AuthAttemptsPerMinute = 10

// RateLimiter limits credential submissions per client IP. A client may send
// a burst of AuthAttemptsPerMinute requests, after which the budget refills
// at the same rate per minute.
func RateLimiter() echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      AuthAttemptsPerMinute / 60.0,
			Burst:     AuthAttemptsPerMinute,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
