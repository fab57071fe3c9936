package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultMenuTTL is how long a cached public menu stays valid. Menus change
// rarely compared to how often they are read, and admin writes invalidate
// eagerly, so a short TTL only covers the stale window after a crash.
const DefaultMenuTTL = 30 * time.Second

var ErrCacheMiss = errors.New("cache miss")

var (
	setValue = Set
	getValue = Get
	delValue = Del
)

// MenuCache caches rendered public menu payloads per merchant slug.
type MenuCache struct {
	ttl time.Duration
}

// NewMenuCache creates a menu cache with the given TTL (0 means DefaultMenuTTL)
func NewMenuCache(ttl time.Duration) *MenuCache {
	if ttl <= 0 {
		ttl = DefaultMenuTTL
	}
	return &MenuCache{ttl: ttl}
}

func menuKey(slug string) string {
	return "menu:" + slug
}

// Get returns the cached JSON payload for a slug, or ErrCacheMiss
func (c *MenuCache) Get(ctx context.Context, slug string) (string, error) {
	val, err := getValue(ctx, menuKey(slug))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

// Set stores a rendered menu payload for a slug
func (c *MenuCache) Set(ctx context.Context, slug string, payload string) error {
	return setValue(ctx, menuKey(slug), payload, c.ttl)
}

// Invalidate drops the cached menu for a slug after a catalog write
func (c *MenuCache) Invalidate(ctx context.Context, slug string) error {
	return delValue(ctx, menuKey(slug))
}
