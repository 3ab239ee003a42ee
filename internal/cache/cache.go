// Package cache provides an optional read-through cache for content documents.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/tablecraft/tablecraft/internal/config"
)

const defaultTTL = 5 * time.Minute

// ContentCache caches content documents in redis keyed by tenant and page.
// A nil *ContentCache is valid and behaves as a permanent miss, so callers
// need no enabled/disabled branching.
type ContentCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a content cache from the configuration. Returns nil when the
// cache is disabled.
func New(cfg config.Redis) *ContentCache {
	if !cfg.Enabled {
		return nil
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &ContentCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: ttl,
	}
}

func contentKey(tenantID uint64, page string) string {
	return fmt.Sprintf("content:%d:%s", tenantID, page)
}

// Get returns the cached document and true on a hit.
func (c *ContentCache) Get(ctx context.Context, tenantID uint64, page string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, contentKey(tenantID, page)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("content cache read failed")
		}

		return nil, false
	}

	return data, true
}

// Set stores a document with the configured TTL. Failures are logged and
// ignored; the cache is best effort.
func (c *ContentCache) Set(ctx context.Context, tenantID uint64, page string, data []byte) {
	if c == nil {
		return
	}

	if err := c.rdb.SetEx(ctx, contentKey(tenantID, page), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("content cache write failed")
	}
}

// Invalidate drops the cached document for a tenant page.
func (c *ContentCache) Invalidate(ctx context.Context, tenantID uint64, page string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, contentKey(tenantID, page)).Err(); err != nil {
		log.Warn().Err(err).Msg("content cache invalidation failed")
	}
}

// Close releases the redis connection.
func (c *ContentCache) Close() error {
	if c == nil {
		return nil
	}

	return c.rdb.Close()
}
