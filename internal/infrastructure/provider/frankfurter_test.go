package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"usdbrl-service/internal/domain"
	"usdbrl-service/internal/infrastructure/httpx"
	"usdbrl-service/internal/infrastructure/provider"

	"github.com/stretchr/testify/require"
)

const frankfurterOK = `{"amount":1.0,"base":"USD","date":"2025-01-13","rates":{"BRL":5.3}}`

func TestFrankfurter_HappyPath(t *testing.T) {
	rec := &recorder{}
	p := &provider.Frankfurter{BaseURL: "https://example.com", Client: rec.client(frankfurterOK, 200)}

	out := p.FetchUsdBrl(context.Background())
	require.True(t, out.Available(), "err: %v", out.Err())
	require.True(t, out.Rate().Equal(domain.MustParseRate("5.30")))
	require.Equal(t, []string{"https://example.com/latest?from=USD&to=BRL"}, rec.urls)
	require.Equal(t, "frankfurter", p.Name())
}

func TestFrankfurter_Unavailable(t *testing.T) {
	cases := map[string]struct {
		body string
		code int
	}{
		"server error": {frankfurterOK, 502},
		"malformed":    {`not json`, 200},
		"missing BRL":  {`{"rates":{"EUR":0.95}}`, 200},
		"null BRL":     {`{"rates":{"BRL":null}}`, 200},
		"no rates":     {`{"base":"USD"}`, 200},
		"negative":     {`{"rates":{"BRL":-5.3}}`, 200},
		"zero":         {`{"rates":{"BRL":0}}`, 200},
		"string rate":  {`{"rates":{"BRL":"5.3"}}`, 200},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			p := &provider.Frankfurter{BaseURL: "https://example.com", Client: rec.client(tc.body, tc.code)}
			out := p.FetchUsdBrl(context.Background())
			require.False(t, out.Available())
			require.ErrorIs(t, out.Err(), domain.ErrProviderUnavailable)
			require.Len(t, rec.urls, 1)
		})
	}
}

func TestFrankfurter_AgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/latest" || q.Get("from") != "USD" || q.Get("to") != "BRL" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(frankfurterOK))
	}))
	defer srv.Close()

	p := &provider.Frankfurter{BaseURL: srv.URL, Client: &httpx.Client{HTTP: srv.Client()}}
	out := p.FetchUsdBrl(context.Background())
	require.True(t, out.Available())
	require.Equal(t, "5.3", out.Rate().String())
}
