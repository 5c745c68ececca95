package usecase

import (
	"context"
	"time"

	"github.com/Mohammed-hani69/adsvairl/pkg/cache"

	"go.uber.org/zap"
)

const (
	cacheKeyCategories = "categories:active"
	cacheKeyCountries  = "locations:countries"
	cachePrefixStates  = "locations:states:"
	cachePrefixCities  = "locations:cities:"
	cachePrefixAll     = "locations:"
)

// readThrough serves key from the cache or calls load and stores the result.
// Cache failures are logged and never fail the request.
func readThrough[T any](
	ctx context.Context,
	c cache.Cache,
	log *zap.Logger,
	key string,
	ttl time.Duration,
	load func() (T, error),
) (T, error) {
	var value T

	found, err := c.Get(ctx, key, &value)
	if err != nil {
		log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found {
		return value, nil
	}

	value, err = load()
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

func invalidate(ctx context.Context, c cache.Cache, log *zap.Logger, prefix string) {
	if err := c.DeleteByPrefix(ctx, prefix); err != nil {
		log.Warn("Cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
	}
}

func cacheTTL(minutes int) time.Duration {
	if minutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}
