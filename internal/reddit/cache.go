package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"reddit-persona/internal/domain"
)

type redisGetSetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedFetcher decora un Fetcher con un cache corto en redis para no
// re-scrapear el mismo perfil en rafaga. No es almacenamiento: solo TTL.
// Cualquier error de redis degrada a fetch directo.
type CachedFetcher struct {
	inner  Fetcher
	client redisGetSetter
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedFetcher(inner Fetcher, client *redis.Client, ttl time.Duration, logger *zap.Logger) Fetcher {
	if client == nil {
		return inner
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedFetcher{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedFetcher) FetchItems(ctx context.Context, username string, limit int) ([]domain.EvidenceItem, error) {
	key := cacheKey(username, limit)

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var items []domain.EvidenceItem
		if err := json.Unmarshal(raw, &items); err == nil {
			c.logger.Debug("cache hit", zap.String("username", username))
			return items, nil
		}
		c.logger.Warn("cache payload corrupted, refetching", zap.String("key", key))
	} else if err != redis.Nil {
		c.logger.Warn("cache read failed", zap.Error(err))
	}

	items, err := c.inner.FetchItems(ctx, username, limit)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(items); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.Warn("cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

func cacheKey(username string, limit int) string {
	return fmt.Sprintf("reddit:items:%s:%d", username, limit)
}
