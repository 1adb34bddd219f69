package metrics

import (
	"time"

	"usdbrl-service/internal/application"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ application.Metrics = (*Metrics)(nil)

// Metrics are registered on the given registerer; exposing them is up to
// the embedding application.
type Metrics struct {
	CacheLookupsTotal         *prometheus.CounterVec
	ProviderFetchesTotal      *prometheus.CounterVec
	ProviderFetchDuration     *prometheus.HistogramVec
	QuotationUnavailableTotal prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CacheLookupsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usdbrl_cache_lookups_total",
				Help: "Total number of USD/BRL cache lookups by result",
			},
			[]string{"result"},
		),

		ProviderFetchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usdbrl_provider_fetches_total",
				Help: "Total number of upstream quote fetches by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),

		ProviderFetchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "usdbrl_provider_fetch_duration_seconds",
				Help:    "Upstream quote fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),

		QuotationUnavailableTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "usdbrl_quotation_unavailable_total",
				Help: "Total number of lookups that failed because every provider was unavailable",
			},
		),
	}
}

func (m *Metrics) CacheLookup(result string) {
	m.CacheLookupsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ProviderFetch(provider string, ok bool, took time.Duration) {
	outcome := "unavailable"
	if ok {
		outcome = "success"
	}
	m.ProviderFetchesTotal.WithLabelValues(provider, outcome).Inc()
	m.ProviderFetchDuration.WithLabelValues(provider).Observe(took.Seconds())
}

func (m *Metrics) QuotationUnavailable() {
	m.QuotationUnavailableTotal.Inc()
}
