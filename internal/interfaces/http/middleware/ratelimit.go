package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// LoginRateLimit throttles credential-guessing per client IP. A rate limiter
// backend failure lets the request through; authentication still stands
// between the caller and any account.
func LoginRateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "login:" + c.ClientIP()

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
