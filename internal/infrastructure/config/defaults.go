package config

import (
	"time"

	"usdbrl-service/internal/infrastructure/provider"
)

const (
	DefaultEnv                 = "local"
	DefaultLogLevel            = "info"
	DefaultCacheBackend        = "redis"
	DefaultProviders           = provider.AwesomeAPIName + "," + provider.FrankfurterName
	DefaultAwesomeAPIBase      = provider.DefaultAwesomeAPIBase
	DefaultFrankfurterBase     = provider.DefaultFrankfurterBase
	DefaultProviderTimeout     = 4 * time.Second
	DefaultUserAgent           = "usdbrl-service/1.0"
	DefaultRedisAddr           = "localhost:6379"
	DefaultRedisConnectTimeout = 5 * time.Second
)
