package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rannaghore/internal/infrastructure/ratelimit"
	"rannaghore/internal/shared/utils"
)

// RateLimit throttles a route per client IP. The ticket submission form is
// the main user: it is anonymous, so the IP is the only stable key.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.ClientIP(), cfg)
		if err != nil {
			// A broken limiter must not take the endpoint down.
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
