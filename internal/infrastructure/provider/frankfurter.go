package provider

import (
	"context"
	"errors"
	"strings"

	"usdbrl-service/internal/application"
	"usdbrl-service/internal/domain"
	"usdbrl-service/internal/infrastructure/httpx"
)

const (
	FrankfurterName        = "frankfurter"
	DefaultFrankfurterBase = "https://api.frankfurter.app"
	frankfurterLatestPath  = "/latest?from=USD&to=BRL"
)

// Frankfurter is the fallback source. Rates arrive as JSON numbers:
// {"amount": 1.0, "base": "USD", "date": "2025-01-02", "rates": {"BRL": 5.3}}.
type Frankfurter struct {
	BaseURL string
	Client  *httpx.Client
}

var _ application.QuoteProvider = (*Frankfurter)(nil)

type frankfurterLatestResp struct {
	Amount float64             `json:"amount"`
	Base   string              `json:"base"`
	Date   string              `json:"date"`
	Rates  map[string]*float64 `json:"rates"`
}

func (p *Frankfurter) Name() string { return FrankfurterName }

func (p *Frankfurter) FetchUsdBrl(ctx context.Context) domain.Outcome {
	base := p.BaseURL
	if base == "" {
		base = DefaultFrankfurterBase
	}
	var body frankfurterLatestResp
	if err := client(p.Client).GetJSON(ctx, strings.TrimRight(base, "/")+frankfurterLatestPath, &body); err != nil {
		return domain.Unavailablef("frankfurter: %w", err)
	}
	brl := body.Rates["BRL"]
	if brl == nil {
		return domain.Unavailable(errors.New("frankfurter: missing rates.BRL"))
	}
	rate, err := domain.RateFromFloat(*brl)
	if err != nil {
		return domain.Unavailablef("frankfurter: rates.BRL: %w", err)
	}
	return domain.Success(rate)
}
