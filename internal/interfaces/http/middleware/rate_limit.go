package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
)

// Limiter counts requests per key within a window
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (remaining int, allowed bool, err error)
}

// RateLimit limits requests per client IP. A nil limiter disables limiting;
// a failing limiter lets requests through.
func RateLimit(cfg *config.Config, limiter Limiter, logger *logrus.Logger) gin.HandlerFunc {
	limit := cfg.Security.RateLimitPerMinute
	if limiter == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		remaining, allowed, err := limiter.Allow(ctx, c.ClientIP(), limit, time.Minute)
		if err != nil {
			logger.WithError(err).WithField("client_ip", c.ClientIP()).Warn("Rate limiter unavailable")
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		c.Next()
	}
}
