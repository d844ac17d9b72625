package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/geocoord-backend/internal/pkg/httputil"
)

// RateLimiter is a sliding-window limiter backed by a redis sorted set per
// client. Authenticated requests are keyed by user, the rest by client IP.
// Redis failures let the request through.
type RateLimiter struct {
	client   redis.Cmdable
	requests int
	window   time.Duration
	logger   *zap.Logger
}

func NewRateLimiter(client redis.Cmdable, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		client:   client,
		requests: cfg.Requests,
		window:   window,
		logger:   logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(math.Ceil(rl.window.Seconds())))

	return func(c *gin.Context) {
		key := "ratelimit:ip:" + c.ClientIP()
		if userID, ok := UserID(c); ok {
			key = "ratelimit:user:" + userID.String()
		}

		count, err := rl.hit(c.Request.Context(), key)
		if err != nil {
			rl.logger.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(0, rl.requests-count)))

		if count > rl.requests {
			c.Header("Retry-After", retryAfter)
			httputil.AbortWithError(c, apperror.TooManyRequests("too many requests, please try again later"))
			return
		}

		c.Next()
	}
}

// hit records a request under key and returns how many requests the key has
// made within the window, this one included.
func (rl *RateLimiter) hit(ctx context.Context, key string) (int, error) {
	now := time.Now()
	windowStart := now.Add(-rl.window).UnixMilli()

	pipe := rl.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()),
	})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(count.Val()), nil
}
