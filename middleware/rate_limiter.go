package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter caps requests per client IP, method and route in a fixed
// window kept in Redis. It lets everything through when Redis is not
// configured.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := config.RedisClient
		if client == nil {
			c.Next()
			return
		}

		key := limiterKey(c)

		rate, err := hit(c, client, key, maxRequests, window)
		if err != nil {
			// Fail open.
			config.Logger.Warn("⚠️ Rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Set("rateLimiter", &rate.RateLimiter)

		if rate.exceeded {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    &rate.RateLimiter,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// limiterKey is per-IP, per-method, per-endpoint.
func limiterKey(c *gin.Context) string {
	return "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
}

type rateWindow struct {
	models.RateLimiter
	exceeded bool
}

func hit(c *gin.Context, client *redis.Client, key string, maxRequests int, period time.Duration) (*rateWindow, error) {
	ctx := c.Request.Context()
	resetKey := key + ":resetAt"

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	// First request → set expiry and stable resetAt
	if count == 1 {
		resetAt := time.Now().Add(period)
		pipe := client.TxPipeline()
		pipe.Expire(ctx, key, period)
		pipe.Set(ctx, resetKey, resetAt.Unix(), period)
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, err
		}
	}

	resetAtUnix, err := client.Get(ctx, resetKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	resetAt := time.Unix(resetAtUnix, 0)

	return &rateWindow{
		RateLimiter: models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      max(maxRequests-int(count), 0),
			ResetAt:        resetAt,
			ResetInSeconds: max(int(time.Until(resetAt).Seconds()), 0),
		},
		exceeded: int(count) > maxRequests,
	}, nil
}
