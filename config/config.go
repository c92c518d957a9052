package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DBPath               string
	ResultsDir           string
	MaxQueryLength       int
	ProcessingDelay      time.Duration
	DefaultPageSize      int
	DefaultEstimatedRows int
	HistoryLimit         int // 0 keeps every entry for the life of the session
	SessionTTL           time.Duration
	ArchiveHistory       bool
	Log                  LogConfig
}

type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// GetConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func GetConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port:                 getEnv("PORT", "9090"),
		DBPath:               getEnv("DB_PATH", "./data/badger"),
		ResultsDir:           getEnv("RESULTS_DIR", "./results"),
		MaxQueryLength:       getEnvInt("MAX_QUERY_LENGTH", 500),
		ProcessingDelay:      getEnvDuration("PROCESSING_DELAY", 1500*time.Millisecond),
		DefaultPageSize:      getEnvInt("DEFAULT_PAGE_SIZE", 10),
		DefaultEstimatedRows: getEnvInt("DEFAULT_ESTIMATED_ROWS", 50),
		HistoryLimit:         getEnvInt("HISTORY_LIMIT", 0),
		SessionTTL:           getEnvDuration("SESSION_TTL", 30*time.Minute),
		ArchiveHistory:       getEnvBool("ARCHIVE_HISTORY", false),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, "")))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvDuration accepts Go durations ("2s") or a bare number of milliseconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue
	}
	return d
}
