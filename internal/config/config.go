package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found", "error", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// AppConfig is the server configuration resolved from the environment.
type AppConfig struct {
	Port      string
	ModelDir  string
	LogLevel  string
	LogFormat string

	SessionTTL    time.Duration
	SessionCookie string
	CookieSecure  bool

	// RedisHost empty keeps sessions in process memory.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	PredictRateLimit  int
	PredictRateWindow time.Duration
}

// Load reads AppConfig from the environment, applying defaults.
func Load() AppConfig {
	return AppConfig{
		Port:      GetEnv("PORT", "3000"),
		ModelDir:  GetEnv("MODEL_DIR", "./artifacts"),
		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "text"),

		SessionTTL:    GetDurationEnv("SESSION_TTL", 24*time.Hour),
		SessionCookie: GetEnv("SESSION_COOKIE", "session_id"),
		CookieSecure:  GetBoolEnv("COOKIE_SECURE", IsProduction()),

		RedisHost:     GetEnv("REDIS_HOST", ""),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetIntEnv("REDIS_DB", 0),

		PredictRateLimit:  GetIntEnv("PREDICT_RATE_LIMIT", 30),
		PredictRateWindow: GetDurationEnv("PREDICT_RATE_WINDOW", time.Minute),
	}
}
