package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

// Config aggregates application configuration values loaded from environment
// variables.
type Config struct {
	Env      string
	HTTPAddr string

	StorageMode string
	MongoURI    string
	MongoDB     string

	KafkaBrokers       []string
	KafkaTopicPrefix   string
	OutboxPollInterval time.Duration
	RetryBackoff       []time.Duration

	HolidayFeedURL string
	HolidayCountry string

	SweepInterval time.Duration
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		StorageMode:      strings.ToLower(getEnv("STORAGE_MODE", StorageMemory)),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "stayops"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
		HolidayFeedURL:   getEnv("HOLIDAY_FEED_URL", "https://date.nager.at/api/v3/PublicHolidays"),
		HolidayCountry:   getEnv("HOLIDAY_COUNTRY", "BR"),
	}

	for _, raw := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if addr := strings.TrimSpace(raw); addr != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, addr)
		}
	}

	poll, err := parseDurationEnv("OUTBOX_POLL_INTERVAL", 500*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	cfg.OutboxPollInterval = poll

	sweep, err := parseDurationEnv("ADJUSTMENT_SWEEP_INTERVAL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg.SweepInterval = sweep

	retryStr := getEnv("RETRY_BACKOFF", "1s,5s,30s")
	for _, raw := range strings.Split(retryStr, ",") {
		val := strings.TrimSpace(raw)
		if val == "" {
			continue
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RETRY_BACKOFF component %q: %w", raw, err)
		}
		cfg.RetryBackoff = append(cfg.RetryBackoff, d)
	}

	switch cfg.StorageMode {
	case StorageMemory:
	case StorageMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required when STORAGE_MODE=%s", StorageMongo)
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_MODE %q", cfg.StorageMode)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
