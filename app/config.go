package app

import (
	"os"
	"strconv"
	"time"
)

// Password schemes. Plain reproduces the historical on-device behavior
// (stored plaintext, exact match); argon2 is the hardened opt-in. Devices
// holding pre-existing plaintext data must stay on plain.
const (
	PasswordSchemePlain  = "plain"
	PasswordSchemeArgon2 = "argon2"
)

type Config struct {
	DatabaseFile string // Path to the sqlite store file (default: ./blakeprintz.db)
	Env          string // Environment (dev, staging, prod) (default: dev)
	LogLevel     string // Log level (debug, info, warn, error) (default: info)
	LogFormat    string // Log format (json, text) (default: json)

	SessionSecret string        // HMAC secret for session tokens (default: random per process)
	SessionTTL    time.Duration // Session token lifetime (default: 24h)

	PasswordScheme string // plain or argon2 (default: plain, see above)

	SignInAttempts int           // Sign-in attempts per window per email; 0 disables throttling (default: 0)
	SignInWindow   time.Duration // Throttle window (default: 1m)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:   getEnvOrDefault("BP_DATABASE_FILE", "blakeprintz.db"),
		Env:            getEnvOrDefault("BP_ENV", "dev"),
		LogLevel:       getEnvOrDefault("BP_LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("BP_LOG_FORMAT", "json"),
		SessionSecret:  os.Getenv("BP_SESSION_SECRET"),
		SessionTTL:     getEnvDurationOrDefault("BP_SESSION_TTL", 24*time.Hour),
		PasswordScheme: getEnvOrDefault("BP_PASSWORD_SCHEME", PasswordSchemePlain),
		SignInAttempts: getEnvIntOrDefault("BP_SIGNIN_ATTEMPTS", 0),
		SignInWindow:   getEnvDurationOrDefault("BP_SIGNIN_WINDOW", time.Minute),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
