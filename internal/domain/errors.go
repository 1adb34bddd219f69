package domain

import "errors"

var (
	ErrInvalidRate         = errors.New("invalid rate")
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrQuotationUnavailable is returned when no fresh cache entry exists and
	// every provider failed. Callers should retry later.
	ErrQuotationUnavailable = errors.New("usd/brl quotation unavailable")
)
