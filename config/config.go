package config

import (
	"os"
	"strconv"
	"time"

	"github.com/movietracker/movietracker/internal/util"
)

type Config struct {
	DatabaseDSN string
	Addr        string
	CacheURL    string
	MQURL       string

	JWTSecret         string
	AccessTokenTTLMin int
	BcryptCost        int

	RateLimit RateLimitConfig
}

// RateLimitConfig controls the redis token bucket. The limiter is off when
// Enabled is false or no cache URL is configured.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	return &Config{
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		Addr:              getEnv("ADDR", ":8080"),
		CacheURL:          os.Getenv("CACHE_URL"),
		MQURL:             os.Getenv("RABBIT_MQ_URL"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret"),
		AccessTokenTTLMin: getEnvInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		RateLimit: RateLimitConfig{
			Enabled:        getEnvBool("RATE_LIMIT_ENABLED", false),
			Capacity:       getEnvInt("RATE_LIMIT_CAPACITY", 60),
			RefillTokens:   getEnvInt("RATE_LIMIT_REFILL_TOKENS", 1),
			RefillInterval: time.Duration(getEnvInt("RATE_LIMIT_REFILL_MS", 1000)) * time.Millisecond,
			TTL:            time.Duration(getEnvInt("RATE_LIMIT_TTL_SEC", 600)) * time.Second,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
