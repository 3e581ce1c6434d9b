package filters

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
)

var ErrTabNotFound = errors.New("filter preset not found")

// Tab is a saved filter preset. Data is the encoded query string it restores.
type Tab struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

type TabStore interface {
	Load(ctx context.Context, key string) ([]Tab, error)
	Store(ctx context.Context, key string, update func([]Tab) ([]Tab, error)) error
}

// TabUtils manages the presets saved under one list key.
type TabUtils struct {
	key   string
	store TabStore
}

func NewTabUtils(key string, store TabStore) *TabUtils {
	return &TabUtils{key: key, store: store}
}

func (u *TabUtils) Key() string {
	return u.key
}

func (u *TabUtils) GetFilterTabs(ctx context.Context) ([]Tab, error) {
	return u.store.Load(ctx, u.key)
}

func (u *TabUtils) SaveFilterTab(ctx context.Context, name, data string) error {
	return u.store.Store(ctx, u.key, func(tabs []Tab) ([]Tab, error) {
		return append(tabs, Tab{Name: name, Data: data}), nil
	})
}

// DeleteFilterTab removes the preset with the given 1-based id.
func (u *TabUtils) DeleteFilterTab(ctx context.Context, id int) error {
	return u.store.Store(ctx, u.key, func(tabs []Tab) ([]Tab, error) {
		if id < 1 || id > len(tabs) {
			return nil, ErrTabNotFound
		}
		out := make([]Tab, 0, len(tabs)-1)
		out = append(out, tabs[:id-1]...)
		return append(out, tabs[id:]...), nil
	})
}

type MemoryTabStore struct {
	mu   sync.Mutex
	tabs map[string][]Tab
}

func NewMemoryTabStore() *MemoryTabStore {
	return &MemoryTabStore{tabs: make(map[string][]Tab)}
}

func (s *MemoryTabStore) Load(_ context.Context, key string) ([]Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Tab(nil), s.tabs[key]...), nil
}

func (s *MemoryTabStore) Store(_ context.Context, key string, update func([]Tab) ([]Tab, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := update(append([]Tab(nil), s.tabs[key]...))
	if err != nil {
		return err
	}
	s.tabs[key] = next
	return nil
}

// RedisTabStore keeps each preset list as one JSON value. Updates use
// optimistic locking and retry a few times on conflict.
type RedisTabStore struct {
	client  *redis.Client
	prefix  string
	retries int
}

func NewRedisTabStore(client *redis.Client) *RedisTabStore {
	return &RedisTabStore{client: client, prefix: "commerce-admin:filters:", retries: 5}
}

func (s *RedisTabStore) Load(ctx context.Context, key string) ([]Tab, error) {
	return s.read(ctx, s.client, key)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *RedisTabStore) read(ctx context.Context, c getter, key string) ([]Tab, error) {
	raw, err := c.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load filter presets")
	}
	var tabs []Tab
	if err := json.Unmarshal(raw, &tabs); err != nil {
		return nil, errors.Wrap(err, "decode filter presets")
	}
	return tabs, nil
}

func (s *RedisTabStore) Store(ctx context.Context, key string, update func([]Tab) ([]Tab, error)) error {
	redisKey := s.prefix + key
	txf := func(tx *redis.Tx) error {
		tabs, err := s.read(ctx, tx, key)
		if err != nil {
			return err
		}
		next, err := update(tabs)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, redisKey, raw, 0)
			return nil
		})
		return err
	}
	for i := 0; i < s.retries; i++ {
		err := s.client.Watch(ctx, txf, redisKey)
		if errors.Is(err, redis.TxFailedErr) {
			time.Sleep(time.Duration(i+1) * 10 * time.Millisecond)
			continue
		}
		return err
	}
	return errors.New("save filter presets: too many concurrent updates")
}
