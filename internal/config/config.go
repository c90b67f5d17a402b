package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Addr          string
	LogLevel      string
	LogFormat     string
	TokensFile    string
	PoolsFile     string
	DashboardFile string
	RPCEndpoint   string
	QuoteTimeout  time.Duration
	SessionTTL    time.Duration
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:          getenv("ADDR", ":1337"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
		TokensFile:    getenv("TOKENS_FILE", "config/tokens.json"),
		PoolsFile:     getenv("POOLS_FILE", "config/pools.json"),
		DashboardFile: getenv("DASHBOARD_FILE", "config/dashboard.json"),
		// Optional: when set, pool reserves are read from chain storage
		// instead of the pools file.
		RPCEndpoint: os.Getenv("ETH_RPC_URL"),
	}

	var err error
	cfg.QuoteTimeout, err = duration("QUOTE_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL, err = duration("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidDuration, key, v)
	}
	return d, nil
}
