package domain

import "time"

const (
	CacheKey = "usd-brl-rate"
	CacheTTL = 10 * time.Minute
)
