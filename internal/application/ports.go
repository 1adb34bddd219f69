package application

import (
	"context"
	"time"

	"usdbrl-service/internal/domain"

	"github.com/samber/mo"
)

// QuoteCache stores the latest rate with a time-to-live. Get must report an
// expired entry as mo.None.
type QuoteCache interface {
	Get(ctx context.Context, key string) (mo.Option[domain.Rate], error)
	Set(ctx context.Context, key string, rate domain.Rate, ttl time.Duration) error
}

// QuoteProvider wraps one upstream quotation source. FetchUsdBrl performs a
// single attempt and reports every failure as an Unavailable outcome.
type QuoteProvider interface {
	Name() string
	FetchUsdBrl(ctx context.Context) domain.Outcome
}

// Metrics receives lookup and fetch events. See infrastructure/metrics.
type Metrics interface {
	CacheLookup(result string)
	ProviderFetch(provider string, ok bool, took time.Duration)
	QuotationUnavailable()
}

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

type noopMetrics struct{}

func (noopMetrics) CacheLookup(string) {}
func (noopMetrics) ProviderFetch(string, bool, time.Duration) {}
func (noopMetrics) QuotationUnavailable() {}
