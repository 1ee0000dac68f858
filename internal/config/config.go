// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server and the booking consumer.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// ActivityPoolPath points at a YAML activity pool. Empty means the
	// built-in pool is used.
	ActivityPoolPath string

	// MaxTripDays caps the inclusive length of a new trip. Defaults to 30.
	MaxTripDays int

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// KafkaBrokers lists the brokers the booking consumer dials.
	KafkaBrokers []string

	// BookingTopic is the topic carrying booking events. Defaults to "bookings".
	BookingTopic string

	// ConsumerGroupID is the consumer group for the booking consumer.
	ConsumerGroupID string

	// MetricsAddr is the listen address of the consumer's /metrics server.
	MetricsAddr string

	// RateLimitRPS is the per-client request rate of the API. Zero disables
	// rate limiting. Defaults to 10.
	RateLimitRPS float64

	// RateLimitBurst is the per-client burst size. Defaults to 20.
	RateLimitBurst int
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is not an
// error, so production deployments need no .env at all.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config.LoadDotEnv %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or naming
// the first numeric variable that does not parse.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		ActivityPoolPath: os.Getenv("ACTIVITY_POOL_PATH"),
		KafkaBrokers:     splitCSV(getEnv("KAFKA_BROKERS", "localhost:9092")),
		BookingTopic:     getEnv("BOOKING_TOPIC", "bookings"),
		ConsumerGroupID:  getEnv("CONSUMER_GROUP_ID", "itinerary-meals"),
		MetricsAddr:      getEnv("METRICS_ADDR", ":9102"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	maxDays, err := getEnvInt("MAX_TRIP_DAYS", 30)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxTripDays = int(maxDays)

	cfg.MaxBodyBytes, err = getEnvInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return Config{}, err
	}

	burst, err := getEnvInt("RATE_LIMIT_BURST", 20)
	if err != nil {
		return Config{}, err
	}
	cfg.RateLimitBurst = int(burst)

	cfg.RateLimitRPS = 10
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || rps < 0 {
			return Config{}, fmt.Errorf("environment variable RATE_LIMIT_RPS must be a non-negative number, got %q", v)
		}
		cfg.RateLimitRPS = rps
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt parses a positive integer variable, falling back when unset.
func getEnvInt(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("environment variable %s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
