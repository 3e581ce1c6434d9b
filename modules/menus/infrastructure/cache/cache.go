// Package cache keeps fetched menu trees between requests. Entries are
// dropped when a menu changes, see RegisterInvalidation.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/treejson"
	"github.com/iota-uz/commerce-admin/pkg/composables"
	"github.com/iota-uz/commerce-admin/pkg/eventbus"
)

type Cache interface {
	Get(ctx context.Context, id string) (*menu.Menu, bool, error)
	Set(ctx context.Context, m *menu.Menu) error
	Delete(ctx context.Context, id string) error
}

type entry struct {
	raw     []byte
	expires time.Time
}

// MemoryCache stores encoded menus so callers never share mutable trees.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now, entries: make(map[string]entry)}
}

func (c *MemoryCache) Get(_ context.Context, id string) (*menu.Menu, bool, error) {
	c.mu.Lock()
	e, ok := c.entries[id]
	if ok && !c.now().Before(e.expires) {
		delete(c.entries, id)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return nil, false, nil
	}
	m, err := treejson.UnmarshalMenu(e.raw)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (c *MemoryCache) Set(_ context.Context, m *menu.Menu) error {
	if c.ttl <= 0 {
		return nil
	}
	raw, err := treejson.MarshalMenu(m)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[m.ID] = entry{raw: raw, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
	return nil
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, prefix: "commerce-admin:menus:"}
}

func (c *RedisCache) key(id string) string {
	return c.prefix + id
}

func (c *RedisCache) Get(ctx context.Context, id string) (*menu.Menu, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get menu")
	}
	m, err := treejson.UnmarshalMenu(raw)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (c *RedisCache) Set(ctx context.Context, m *menu.Menu) error {
	if c.ttl <= 0 {
		return nil
	}
	raw, err := treejson.MarshalMenu(m)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key(m.ID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set menu")
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return errors.Wrap(err, "redis delete menu")
	}
	return nil
}

// CachedRepository serves GetByID from the cache. Cache failures are logged
// and fall through to the wrapped repository.
type CachedRepository struct {
	menu.Repository
	cache Cache
}

func NewCachedRepository(repo menu.Repository, cache Cache) *CachedRepository {
	return &CachedRepository{Repository: repo, cache: cache}
}

func (r *CachedRepository) GetByID(ctx context.Context, id string) (*menu.Menu, error) {
	logger := composables.UseLogger(ctx).WithField("menu-id", id)
	m, ok, err := r.cache.Get(ctx, id)
	if err != nil {
		logger.WithError(err).Warn("menu cache read failed")
	}
	if ok {
		return m, nil
	}
	m, err = r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, m); err != nil {
		logger.WithError(err).Warn("menu cache write failed")
	}
	return m, nil
}

// RegisterInvalidation drops cached menus on change events.
func RegisterInvalidation(bus eventbus.EventBus, cache Cache) {
	bus.Subscribe(func(e *menu.UpdatedEvent) {
		invalidate(cache, e.MenuID)
	})
	bus.Subscribe(func(e *menu.DeletedEvent) {
		invalidate(cache, e.MenuID)
	})
}

func invalidate(cache Cache, id string) {
	ctx := context.Background()
	if err := cache.Delete(ctx, id); err != nil {
		composables.UseLogger(ctx).WithError(err).WithField("menu-id", id).Warn("menu cache invalidation failed")
	}
}
