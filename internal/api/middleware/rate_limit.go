package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type rateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

func incrWithTTL(ctx context.Context, client rateCounter, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = client.Expire(ctx, key, ttl).Err()
	}
	return count, nil
}

// RateLimit applies a fixed-window counter per identity (falling back to
// client IP) for the given scope. Redis failures fail open: losing a counter
// must not take writes down with it.
func RateLimit(client rateCounter, scope string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := c.ClientIP()
		if identity, ok := IdentityFromContext(c); ok {
			principal = identity.ID
		}

		bucket := time.Now().UTC().Truncate(window).Format("20060102150405")
		key := "rate:" + scope + ":" + principal + ":" + bucket

		count, err := incrWithTTL(c.Request.Context(), client, key, window)
		if err == nil && count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
