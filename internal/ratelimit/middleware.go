package ratelimit

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/smartzap/server/internal/logger"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// per-client request budget for the public API
var apiRate = limiter.Rate{
	Period: time.Minute,
	Limit:  120,
}

// creates the API rate-limiting middleware. uses Redis when a URL is
// configured so the budget is shared across instances, and falls back
// to an in-memory store otherwise.
func Middleware(redisURL string) (gin.HandlerFunc, error) {
	store, err := newStore(redisURL)
	if err != nil {
		return nil, err
	}

	return mgin.NewMiddleware(limiter.New(store, apiRate)), nil
}

func newStore(redisURL string) (limiter.Store, error) {
	if redisURL == "" {
		logger.Warn("REDIS_URL not set, API rate limits are per-instance only")
		return memory.NewStore(), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(redis.NewClient(opts), limiter.StoreOptions{
		Prefix: "smartzap:ratelimit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
	}

	return store, nil
}
