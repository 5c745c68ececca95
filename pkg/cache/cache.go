package cache

import (
	"context"
	"time"

	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"go.uber.org/zap"
)

// Cache stores JSON encoded values by key. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Close() error
}

// New returns a Redis backed cache when REDIS_ADDR is set, otherwise an in-process one.
// An unreachable Redis falls back to memory so the API keeps serving.
func New(ctx context.Context, cfg utils.CacheConfig, log *zap.Logger) Cache {
	if cfg.RedisAddr == "" {
		log.Info("Using in-memory cache")
		return NewMemory(5 * time.Minute)
	}

	redisCache := NewRedis(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn("Redis unreachable, using in-memory cache",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		redisCache.Close()
		return NewMemory(5 * time.Minute)
	}

	log.Info("Redis cache connected", zap.String("addr", cfg.RedisAddr))
	return redisCache
}
