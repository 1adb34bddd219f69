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
	AwesomeAPIName        = "awesomeapi"
	DefaultAwesomeAPIBase = "https://economia.awesomeapi.com.br"
	awesomeAPILastPath    = "/json/last/USD-BRL"
)

// AwesomeAPI is the primary source. The pair object carries the bid as
// decimal text: {"USDBRL": {"bid": "5.2531", ...}}.
type AwesomeAPI struct {
	BaseURL string
	Client  *httpx.Client
}

var _ application.QuoteProvider = (*AwesomeAPI)(nil)

type awesomeLastResp struct {
	USDBRL *struct {
		Code      string `json:"code"`
		CodeIn    string `json:"codein"`
		Bid       string `json:"bid"`
		Ask       string `json:"ask"`
		Timestamp string `json:"timestamp"`
	} `json:"USDBRL"`
}

func (p *AwesomeAPI) Name() string { return AwesomeAPIName }

func (p *AwesomeAPI) FetchUsdBrl(ctx context.Context) domain.Outcome {
	base := p.BaseURL
	if base == "" {
		base = DefaultAwesomeAPIBase
	}
	var body awesomeLastResp
	if err := client(p.Client).GetJSON(ctx, strings.TrimRight(base, "/")+awesomeAPILastPath, &body); err != nil {
		return domain.Unavailablef("awesomeapi: %w", err)
	}
	if body.USDBRL == nil {
		return domain.Unavailable(errors.New("awesomeapi: missing USDBRL"))
	}
	rate, err := domain.ParseRate(body.USDBRL.Bid)
	if err != nil {
		return domain.Unavailablef("awesomeapi: bid: %w", err)
	}
	return domain.Success(rate)
}

func client(c *httpx.Client) *httpx.Client {
	if c == nil {
		return &httpx.Client{}
	}
	return c
}
