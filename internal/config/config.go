package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	defaults "usdbrl-service/internal/infrastructure/config"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// Cache
	CacheBackend string
	// Providers, in fallback order
	Providers       []string
	AwesomeAPIBase  string
	FrankfurterBase string
	ProviderTimeout time.Duration
	StaticRate      string
	UserAgent       string
	// Redis
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	RedisConnectTimeout time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durMS(key string, def time.Duration) time.Duration {
	ms := atoiDef(getEnv(key, ""), -1)
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:                 getEnv("ENV", defaults.DefaultEnv),
		LogLevel:            getEnv("LOG_LEVEL", defaults.DefaultLogLevel),
		CacheBackend:        strings.ToLower(getEnv("CACHE_BACKEND", defaults.DefaultCacheBackend)),
		Providers:           splitList(getEnv("PROVIDERS", defaults.DefaultProviders)),
		AwesomeAPIBase:      getEnv("AWESOMEAPI_BASE", defaults.DefaultAwesomeAPIBase),
		FrankfurterBase:     getEnv("FRANKFURTER_BASE", defaults.DefaultFrankfurterBase),
		ProviderTimeout:     durMS("PROVIDER_TIMEOUT_MS", defaults.DefaultProviderTimeout),
		StaticRate:          getEnv("STATIC_RATE", ""),
		UserAgent:           getEnv("HTTP_USER_AGENT", defaults.DefaultUserAgent),
		RedisAddr:           getEnv("REDIS_ADDR", defaults.DefaultRedisAddr),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisConnectTimeout: durMS("REDIS_CONNECT_TIMEOUT_MS", defaults.DefaultRedisConnectTimeout),
	}
}
