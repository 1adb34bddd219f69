package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usdbrl-service/internal/application"
	"usdbrl-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/samber/mo"
)

var _ application.QuoteCache = (*QuoteCache)(nil)

// QuoteCache keeps rates as decimal text under a Redis key with EX expiry,
// so Redis itself drops entries once the TTL elapses.
type QuoteCache struct {
	Client redis.Cmdable
}

func New(client redis.Cmdable) *QuoteCache {
	return &QuoteCache{Client: client}
}

func (c *QuoteCache) Get(ctx context.Context, key string) (mo.Option[domain.Rate], error) {
	v, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return mo.None[domain.Rate](), nil
	}
	if err != nil {
		return mo.None[domain.Rate](), fmt.Errorf("redis get %s: %w", key, err)
	}
	rate, err := domain.ParseRate(v)
	if err != nil {
		// Unreadable values are ignored; the next Set overwrites them.
		return mo.None[domain.Rate](), nil
	}
	return mo.Some(rate), nil
}

func (c *QuoteCache) Set(ctx context.Context, key string, rate domain.Rate, ttl time.Duration) error {
	if err := c.Client.Set(ctx, key, rate.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
