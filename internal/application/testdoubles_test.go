package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"usdbrl-service/internal/domain"

	"github.com/samber/mo"
)

var errBackend = errors.New("backend down")

type cacheEntry struct {
	rate      domain.Rate
	expiresAt time.Time
}

// fakeCache is a TTL map driven by a settable clock.
type fakeCache struct {
	mu      sync.Mutex
	now     time.Time
	entries map[string]cacheEntry
	getErr  error
	setErr  error
	sets    int
	lastTTL time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		now:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		entries: map[string]cacheEntry{},
	}
}

func (f *fakeCache) Get(_ context.Context, key string) (mo.Option[domain.Rate], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return mo.None[domain.Rate](), f.getErr
	}
	e, ok := f.entries[key]
	if !ok || !f.now.Before(e.expiresAt) {
		return mo.None[domain.Rate](), nil
	}
	return mo.Some(e.rate), nil
}

func (f *fakeCache) Set(_ context.Context, key string, rate domain.Rate, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.lastTTL = ttl
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = cacheEntry{rate: rate, expiresAt: f.now.Add(ttl)}
	return nil
}

func (f *fakeCache) advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func (f *fakeCache) stored(key string) (domain.Rate, bool) {
	opt, _ := f.Get(context.Background(), key)
	return opt.Get()
}

type fakeProvider struct {
	mu    sync.Mutex
	name  string
	out   domain.Outcome
	calls int
}

func succeeding(name, rate string) *fakeProvider {
	return &fakeProvider{name: name, out: domain.Success(domain.MustParseRate(rate))}
}

func failing(name string) *fakeProvider {
	return &fakeProvider{name: name, out: domain.Unavailablef("%s: connection refused", name)}
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) FetchUsdBrl(context.Context) domain.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.out
}

func (f *fakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeMetrics struct {
	mu          sync.Mutex
	lookups     map[string]int
	fetches     map[string]int
	took        map[string]time.Duration
	unavailable int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{lookups: map[string]int{}, fetches: map[string]int{}, took: map[string]time.Duration{}}
}

func (m *fakeMetrics) CacheLookup(result string) {
	m.mu.Lock()
	m.lookups[result]++
	m.mu.Unlock()
}

func (m *fakeMetrics) ProviderFetch(provider string, ok bool, took time.Duration) {
	m.mu.Lock()
	m.took[provider] += took
	key := provider + ":unavailable"
	if ok {
		key = provider + ":ok"
	}
	m.fetches[key]++
	m.mu.Unlock()
}

func (m *fakeMetrics) QuotationUnavailable() {
	m.mu.Lock()
	m.unavailable++
	m.mu.Unlock()
}

// steppingClock advances by step on every call.
type steppingClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

type fixedIDGen string

func (g fixedIDGen) NewID() string { return string(g) }
