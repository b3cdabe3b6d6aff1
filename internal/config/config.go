package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	// Hex-encoded secp256k1 private key used by the reward signer.
	SignerPrivateKey string

	// HMAC secret for service-to-service tokens (sync-rewards).
	InternalAPISecret string

	TierLockWindow time.Duration
	SignRateLimit  time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		SignerPrivateKey:  os.Getenv("SIGNER_PRIVATE_KEY"),
		InternalAPISecret: getEnv("INTERNAL_API_SECRET", "12345"),
	}

	var err error
	cfg.TierLockWindow, err = parseDuration(getEnv("TIER_LOCK_WINDOW", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIER_LOCK_WINDOW: %w", err)
	}
	cfg.SignRateLimit, err = parseDuration(getEnv("SIGN_RATE_LIMIT", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SIGN_RATE_LIMIT: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
