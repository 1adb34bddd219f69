package application

import (
	"context"
	"time"

	"usdbrl-service/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// QuoteService answers USD/BRL lookups from the cache, falling back to the
// providers in the order they were given.
type QuoteService struct {
	cache     QuoteCache
	providers []QuoteProvider
	key       string
	ttl       time.Duration
	log       *zap.Logger
	metrics   Metrics
	idgen     IDGen
	now       func() time.Time
}

type Option func(*QuoteService)

func WithTTL(d time.Duration) Option { return func(s *QuoteService) { s.ttl = d } }
func WithCacheKey(k string) Option { return func(s *QuoteService) { s.key = k } }
func WithLogger(l *zap.Logger) Option { return func(s *QuoteService) { s.log = l } }
func WithMetrics(m Metrics) Option { return func(s *QuoteService) { s.metrics = m } }
func WithIDGen(g IDGen) Option { return func(s *QuoteService) { s.idgen = g } }
func WithNow(now func() time.Time) Option { return func(s *QuoteService) { s.now = now } }

func NewQuoteService(cache QuoteCache, providers []QuoteProvider, opts ...Option) *QuoteService {
	s := &QuoteService{
		cache:     cache,
		providers: append([]QuoteProvider(nil), providers...),
		key:       domain.CacheKey,
		ttl:       domain.CacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ttl <= 0 {
		s.ttl = domain.CacheTTL
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}
	if s.idgen == nil {
		s.idgen = defaultIDGen{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// GetUsdBrlRate returns the cached rate when fresh, otherwise the first rate a
// provider supplies. It fails with domain.ErrQuotationUnavailable when every
// provider is unavailable; an expired entry is never used as a fallback.
func (s *QuoteService) GetUsdBrlRate(ctx context.Context) (domain.Rate, error) {
	log := s.log.With(zap.String("lookup_id", s.idgen.NewID()))

	cached, err := s.cache.Get(ctx, s.key)
	rate, ok := cached.Get()
	switch {
	case err != nil:
		s.metrics.CacheLookup(CacheError)
		log.Warn("quote.cache_read_failed", zap.Error(err))
	case ok:
		s.metrics.CacheLookup(CacheHit)
		log.Debug("quote.cache_hit", zap.Stringer("rate", rate))
		return rate, nil
	default:
		s.metrics.CacheLookup(CacheMiss)
	}

	for _, p := range s.providers {
		start := s.now()
		out := p.FetchUsdBrl(ctx)
		s.metrics.ProviderFetch(p.Name(), out.Available(), s.now().Sub(start))
		if !out.Available() {
			log.Warn("quote.provider_unavailable", zap.String("provider", p.Name()), zap.Error(out.Err()))
			continue
		}
		s.store(ctx, log, p.Name(), out.Rate())
		return out.Rate(), nil
	}

	s.metrics.QuotationUnavailable()
	log.Error("quote.unavailable", zap.Int("providers_tried", len(s.providers)))
	return domain.Rate{}, domain.ErrQuotationUnavailable
}

// ConvertUsdToBrl multiplies amountUSD by the current rate using exact
// decimal arithmetic.
func (s *QuoteService) ConvertUsdToBrl(ctx context.Context, amountUSD decimal.Decimal) (decimal.Decimal, error) {
	rate, err := s.GetUsdBrlRate(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return rate.Convert(amountUSD), nil
}

// A failed write does not fail the lookup; the next call simply misses again.
func (s *QuoteService) store(ctx context.Context, log *zap.Logger, provider string, rate domain.Rate) {
	if err := s.cache.Set(ctx, s.key, rate, s.ttl); err != nil {
		log.Warn("quote.cache_write_failed", zap.String("provider", provider), zap.Error(err))
		return
	}
	log.Info("quote.cached",
		zap.String("provider", provider),
		zap.Stringer("rate", rate),
		zap.Duration("ttl", s.ttl),
	)
}
