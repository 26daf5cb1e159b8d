package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the process configuration, sourced from the environment.
type Config struct {
	HTTPAddr    string
	PostgresDSN string

	// JWTSecret is the base64-encoded HS256 key. Required; a blank or
	// undecodable value keeps the server from starting.
	JWTSecret          string
	JWTTokenValidityMS int

	LoginRateLimitAttempts      int
	LoginRateLimitWindowSeconds int
	LoginRateLimitFailClosed    bool
	LoginRateLimitMaxKeys       int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func FromEnv() Config {
	return Config{
		HTTPAddr:    envDefault("HTTP_ADDR", ":8080"),
		PostgresDSN: envDefault("POSTGRES_DSN", "host=localhost user=takecost password=takecost dbname=takecost port=5432 sslmode=disable"),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTokenValidityMS: envIntDefault("JWT_TOKEN_VALIDITY_MS", 3_600_000),

		LoginRateLimitAttempts:      envIntDefault("LOGIN_RATE_LIMIT_ATTEMPTS", 10),
		LoginRateLimitWindowSeconds: envIntDefault("LOGIN_RATE_LIMIT_WINDOW_SECONDS", 60),
		LoginRateLimitFailClosed:    envBoolDefault("LOGIN_RATE_LIMIT_FAIL_CLOSED", false),
		LoginRateLimitMaxKeys:       envIntDefault("LOGIN_RATE_LIMIT_MAX_KEYS", 10000),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envIntDefault("REDIS_DB", 0),
	}
}

// TokenValidity converts the configured millisecond validity to a Duration.
func (c Config) TokenValidity() time.Duration {
	return time.Duration(c.JWTTokenValidityMS) * time.Millisecond
}

// LoginRateLimitWindow converts the configured window to a Duration.
func (c Config) LoginRateLimitWindow() time.Duration {
	return time.Duration(c.LoginRateLimitWindowSeconds) * time.Second
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
