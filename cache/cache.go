// Package cache provides the tag-based read cache shared by gateway reads
// and action invalidations. Entries are keyed by the full request URL and
// indexed under a tag, so invalidating a tag drops every cached read that
// registered under it, regardless of its query parameters.
package cache

import (
	"context"
	"log/slog"
	"time"
)

// Store is the keyed byte store underneath the cache. Implementations must
// drop every key indexed under a tag when that tag is invalidated.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, tag, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, tags ...string) error
}

type Cache struct {
	store      Store
	defaultTTL time.Duration
	log        *slog.Logger
}

const DefaultTTL = 5 * time.Minute

func New(store Store, defaultTTL time.Duration, log *slog.Logger) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Cache{store: store, defaultTTL: defaultTTL, log: log}
}

// Lookup returns the cached value for key. Store failures degrade to a
// miss: a broken cache must not break reads.
func (c *Cache) Lookup(ctx context.Context, key string) ([]byte, bool) {
	value, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache read failed", "key", key, "error", err)
		return nil, false
	}
	return value, ok
}

// Put stores a value under the tag's index. The caller decides what is
// cacheable; failed reads must never be stored, or a transient backend blip
// would be served until the TTL expires. Best effort: a failed write is
// logged and the next read fetches again.
func (c *Cache) Put(ctx context.Context, tag, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if err := c.store.Set(ctx, tag, key, value, ttl); err != nil {
		c.log.Warn("cache write failed", "tag", tag, "error", err)
	}
}

// Invalidate drops every entry registered under the given tags. Best effort:
// a failed invalidation is logged, and the entries age out via TTL.
func (c *Cache) Invalidate(ctx context.Context, tags ...string) {
	if len(tags) == 0 {
		return
	}
	if err := c.store.Invalidate(ctx, tags...); err != nil {
		c.log.Warn("cache invalidation failed", "tags", tags, "error", err)
	}
}
