package provider_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"usdbrl-service/internal/infrastructure/httpx"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// recorder captures the request URLs seen by a fake transport.
type recorder struct {
	urls []string
}

func (rec *recorder) client(resBody string, code int) *httpx.Client {
	return &httpx.Client{HTTP: &http.Client{
		Timeout: 2 * time.Second,
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			rec.urls = append(rec.urls, r.URL.String())
			return &http.Response{
				StatusCode: code,
				Body:       io.NopCloser(strings.NewReader(resBody)),
				Header:     make(http.Header),
				Request:    r,
			}, nil
		}),
	}}
}

func (rec *recorder) failingClient() *httpx.Client {
	return &httpx.Client{HTTP: &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			rec.urls = append(rec.urls, r.URL.String())
			return nil, errors.New("dial tcp: connection refused")
		}),
	}}
}
