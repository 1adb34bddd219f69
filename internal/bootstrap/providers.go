package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"usdbrl-service/internal/application"
	"usdbrl-service/internal/config"
	"usdbrl-service/internal/domain"
	"usdbrl-service/internal/infrastructure/httpx"
	"usdbrl-service/internal/infrastructure/logx"
	"usdbrl-service/internal/infrastructure/memcache"
	"usdbrl-service/internal/infrastructure/metrics"
	"usdbrl-service/internal/infrastructure/provider"
	redisstore "usdbrl-service/internal/infrastructure/redis"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrUnknownCacheBackend = errors.New("unknown CACHE_BACKEND")
	ErrUnknownProvider     = errors.New("unknown provider")
	ErrNoProviders         = errors.New("no providers configured (PROVIDERS)")
	ErrProviderOrder       = errors.New("providers out of order")
	ErrStaticNotAllowed    = errors.New("static provider is only allowed with ENV=local")
)

// providerRank is the fixed fallback order. PROVIDERS may drop sources but
// not reorder them.
var providerRank = map[string]int{
	provider.AwesomeAPIName:  0,
	provider.FrankfurterName: 1,
	provider.StaticName:      2,
}

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

// ProvideRedisClient connects and waits for PING, backing off until
// RedisConnectTimeout elapses.
func ProvideRedisClient(ctx context.Context, cfg config.Config, log *zap.Logger) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 100 * time.Millisecond
	exp.MaxInterval = 1 * time.Second
	exp.MaxElapsedTime = cfg.RedisConnectTimeout

	attempt := 0
	op := func() error {
		attempt++
		err := client.Ping(ctx).Err()
		if err != nil {
			log.Warn("redis_ping_failed", zap.Int("attempt", attempt), zap.Error(err))
		}
		return err
	}
	if err := backoff.Retry(op, backoff.WithContext(exp, ctx)); err != nil {
		_ = client.Close()
		return nil, func() {}, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
	}
	log.Info("redis_connected", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
	cleanup := func() {
		log.Info("closing redis")
		_ = client.Close()
	}
	return client, cleanup, nil
}

func ProvideCache(ctx context.Context, cfg config.Config, log *zap.Logger) (application.QuoteCache, func(), error) {
	switch cfg.CacheBackend {
	case "redis":
		client, cleanup, err := ProvideRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, func() {}, err
		}
		return redisstore.New(client), cleanup, nil
	case "memory":
		return memcache.New(), func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("%w: %q", ErrUnknownCacheBackend, cfg.CacheBackend)
	}
}

func ProvideHTTPClient(cfg config.Config) *httpx.Client {
	return &httpx.Client{
		HTTP:      &http.Client{Timeout: cfg.ProviderTimeout},
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.ProviderTimeout,
	}
}

// ProvideQuoteProviders builds the fallback chain from cfg.Providers, which
// must follow the fixed order awesomeapi, frankfurter, static. The static
// source is a development aid and is refused outside ENV=local.
func ProvideQuoteProviders(cfg config.Config, hc *httpx.Client) ([]application.QuoteProvider, error) {
	if len(cfg.Providers) == 0 {
		return nil, ErrNoProviders
	}
	out := make([]application.QuoteProvider, 0, len(cfg.Providers))
	last := -1
	for _, name := range cfg.Providers {
		rank, known := providerRank[name]
		if !known {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
		}
		if rank <= last {
			return nil, fmt.Errorf("%w: %v", ErrProviderOrder, cfg.Providers)
		}
		last = rank
		switch name {
		case provider.AwesomeAPIName:
			out = append(out, &provider.AwesomeAPI{BaseURL: cfg.AwesomeAPIBase, Client: hc})
		case provider.FrankfurterName:
			out = append(out, &provider.Frankfurter{BaseURL: cfg.FrankfurterBase, Client: hc})
		case provider.StaticName:
			if cfg.Env != "local" {
				return nil, ErrStaticNotAllowed
			}
			rate, err := domain.ParseRate(cfg.StaticRate)
			if err != nil {
				return nil, fmt.Errorf("STATIC_RATE: %w", err)
			}
			out = append(out, provider.NewStatic(rate))
		}
	}
	return out, nil
}

// ProvideMetrics registers on reg, or on a fresh private registry when reg
// is nil, so repeated builds in one process never collide.
func ProvideMetrics(reg prometheus.Registerer) *metrics.Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return metrics.New(reg)
}

func ProvideQuoteService(cfg config.Config, cache application.QuoteCache, ps []application.QuoteProvider, m *metrics.Metrics, log *zap.Logger) *application.QuoteService {
	return application.NewQuoteService(cache, ps,
		application.WithLogger(log),
		application.WithMetrics(m),
	)
}
