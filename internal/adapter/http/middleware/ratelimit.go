package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "bizdash-core/internal/adapter/storage/redis"
	"bizdash-core/pkg/apperror"
	"bizdash-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-client limits for each route group.
// Dispatch routes are additionally limited per user and kind inside the
// dispatcher.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"sheets_read":  {Limit: 120, Window: time.Minute},
		"sheets_write": {Limit: 30, Window: time.Minute},
		"dispatch":     {Limit: 60, Window: time.Minute},
		"admin":        {Limit: 20, Window: time.Minute},
	}
}

// RateLimiter creates a per-client rate-limiting middleware for a route group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("http:%s:%s", c.ClientIP(), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded(""))
			c.Abort()
			return
		}

		c.Next()
	}
}
