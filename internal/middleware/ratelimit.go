package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/movietracker/movietracker/internal/cache"
)

// RateLimit budgets requests per client IP using the redis token bucket.
// Redis errors fail open: limiting is a guard, not a dependency.
func RateLimit(limiter *cache.RateLimiter, logger *zap.Logger) gin.HandlerFunc {
	if limiter == nil {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	return func(ctx *gin.Context) {
		key := "ratelimit:ip:" + ctx.ClientIP()
		allowed, remaining, retryAfter, err := limiter.Allow(key)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			ctx.Next()
			return
		}
		ctx.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		if !allowed {
			secs := int(math.Ceil(retryAfter.Seconds()))
			ctx.Header("Retry-After", strconv.Itoa(secs))
			ctx.AbortWithStatusJSON(429, gin.H{
				"error":       "too many requests",
				"retry_after": secs,
			})
			return
		}
		ctx.Next()
	}
}
