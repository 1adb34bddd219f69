package bootstrap

import (
	"context"

	"usdbrl-service/internal/application"
	"usdbrl-service/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Deps are the process-wide pieces Build needs. A nil Log falls back to the
// package logger. A nil Registry gives the service its own unexported
// registry; pass one to expose the metrics.
type Deps struct {
	Log      *zap.Logger
	Registry prometheus.Registerer
}

// Build wires the quote service for cfg. The returned cleanup releases the
// cache backend and must be called once the service is no longer used.
func Build(ctx context.Context, cfg config.Config, d Deps) (*application.QuoteService, func(), error) {
	log := d.Log
	if log == nil {
		log = ProvideLogger()
	}
	cache, cleanup, err := ProvideCache(ctx, cfg, log)
	if err != nil {
		return nil, func() {}, err
	}
	ps, err := ProvideQuoteProviders(cfg, ProvideHTTPClient(cfg))
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name()
	}
	log.Info("quote_service_ready",
		zap.String("cache", cfg.CacheBackend),
		zap.Strings("providers", names),
	)
	svc := ProvideQuoteService(cfg, cache, ps, ProvideMetrics(d.Registry), log)
	return svc, cleanup, nil
}

// Init builds the quote service from the environment.
func Init(ctx context.Context) (*application.QuoteService, func(), error) {
	return Build(ctx, ProvideConfig(), Deps{Log: ProvideLogger()})
}
