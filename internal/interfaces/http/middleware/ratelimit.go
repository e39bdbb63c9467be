package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chefviral/internal/infrastructure/ratelimit"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/utils"
)

// RateLimiter throttles a route group by client IP. Redis failures let the
// request through so an outage never takes the public surface down with it.
type RateLimiter struct {
	limiter ratelimit.Limiter
	cfg     ratelimit.Config
	prefix  string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, cfg ratelimit.Config, prefix string, logger logger.Interface) *RateLimiter {
	return &RateLimiter{limiter: limiter, cfg: cfg, prefix: prefix, logger: logger}
}

func (r *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := r.prefix + ":" + c.ClientIP()

		allowed, err := r.limiter.Allow(c.Request.Context(), key, r.cfg)
		if err != nil {
			r.logger.Warnw("rate limit check failed", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Muitas solicitações. Aguarde um momento.")
			c.Abort()
			return
		}

		c.Next()
	}
}
