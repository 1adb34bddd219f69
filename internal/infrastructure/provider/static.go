package provider

import (
	"context"

	"usdbrl-service/internal/application"
	"usdbrl-service/internal/domain"
)

const StaticName = "static"

// Ensure Static implements application.QuoteProvider.
var _ application.QuoteProvider = (*Static)(nil)

// Static always returns the same rate. Used for local runs without network.
type Static struct {
	rate domain.Rate
}

func NewStatic(rate domain.Rate) *Static { return &Static{rate: rate} }

func (s *Static) Name() string { return StaticName }

func (s *Static) FetchUsdBrl(context.Context) domain.Outcome {
	if s.rate.IsZero() {
		return domain.Unavailablef("static: no rate configured")
	}
	return domain.Success(s.rate)
}
