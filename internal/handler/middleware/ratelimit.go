package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"marketplace-orders/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

// Limiter is a per-key token bucket.
type Limiter interface {
	Allow(ctx context.Context, key string) (cache.Decision, error)
	Capacity() int
}

type RateLimitMiddleware struct {
	limiter Limiter
}

// NewRateLimitMiddleware accepts a nil limiter, in which case every request passes.
func NewRateLimitMiddleware(limiter Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit keys the bucket on client IP and route. Limiter errors fail open.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || m.limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP() + ":route:" + c.Request.Method + " " + c.FullPath()
		decision, err := m.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(m.limiter.Capacity()))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
