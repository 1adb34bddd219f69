package memcache

import (
	"context"
	"sync"
	"time"

	"usdbrl-service/internal/application"
	"usdbrl-service/internal/domain"

	"github.com/samber/mo"
)

var _ application.QuoteCache = (*Cache)(nil)

type entry struct {
	rate      domain.Rate
	expiresAt time.Time
}

// Cache is an in-process QuoteCache. Expiry is checked on read; nothing
// sweeps old entries, each Set simply overwrites the previous one.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

type Option func(*Cache)

func WithClock(now func() time.Time) Option { return func(c *Cache) { c.now = now } }

func New(opts ...Option) *Cache {
	c := &Cache{entries: map[string]entry{}, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) Get(_ context.Context, key string) (mo.Option[domain.Rate], error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(e.expiresAt) {
		return mo.None[domain.Rate](), nil
	}
	return mo.Some(e.rate), nil
}

func (c *Cache) Set(_ context.Context, key string, rate domain.Rate, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = entry{rate: rate, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
