package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds all configuration for the spellcraft tools
type Config struct {
	Redis      RedisConfig
	Components ComponentsConfig
	Metrics    MetricsConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL         string // Optional: the built-in table is used when empty
	DialTimeout time.Duration
}

// ComponentsConfig points at a component table file
type ComponentsConfig struct {
	TablePath string // Optional: YAML table to use instead of the built-in one
}

// MetricsConfig holds Prometheus exporter configuration
type MetricsConfig struct {
	Addr string // Optional: metrics are not served when empty
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL:         os.Getenv("REDIS_URL"),
			DialTimeout: time.Duration(getEnvAsIntOrDefault("REDIS_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Components: ComponentsConfig{
			TablePath: os.Getenv("COMPONENT_TABLE"),
		},
		Metrics: MetricsConfig{
			Addr: getEnvOrDefault("METRICS_ADDR", ""),
		},
	}

	if cfg.Redis.DialTimeout <= 0 {
		return nil, fmt.Errorf("REDIS_TIMEOUT_SECONDS must be positive")
	}
	if cfg.Redis.URL != "" {
		if _, err := cfg.Redis.Options(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Enabled reports whether a Redis URL was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// Options parses the Redis URL into client options
func (c RedisConfig) Options() (*redis.Options, error) {
	opts, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	opts.DialTimeout = c.DialTimeout
	return opts, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
