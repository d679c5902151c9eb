package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

const rateLimiterPrefix = "rate_limiter:create_booking"

// NewLimiterStore returns a Redis-backed store shared by every instance when
// redisURL is set, an in-process store otherwise. The returned close func
// releases the Redis client.
func NewLimiterStore(ctx context.Context, redisURL string) (limiter.Store, func() error, error) {
	if redisURL == "" {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: rateLimiterPrefix}), func() error { return nil }, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	store, err := redisstore.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   rateLimiterPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create redis store: %w", err)
	}

	return store, client.Close, nil
}

// NewRateLimiter limits requests per caller with rates such as "30-M" or
// "5-S". It must run after RequireUser.
func NewRateLimiter(rate string, store limiter.Store) (gin.HandlerFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	return ginmiddleware.NewMiddleware(limiter.New(store, parsed), ginmiddleware.WithKeyGetter(func(c *gin.Context) string {
		if userID, ok := c.Get(userIDKey); ok {
			return strconv.FormatInt(userID.(int64), 10)
		}
		return c.ClientIP()
	})), nil
}
