package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pulsex/internal/errors"
)

// DefaultReasonPrefix names the indicator family for vaccine hesitancy reasons
const DefaultReasonPrefix = "why_no_vaccine_"

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Cache   CacheConfig
	Session SessionConfig
	Log     LogConfig
	Layout  Layout
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds dataset settings
type DataConfig struct {
	File         string
	ReasonPrefix string
	DemoMode     bool
	DemoRows     int
	SampleSeed   int64
}

// CacheConfig holds membership cache settings
type CacheConfig struct {
	Size int
}

// SessionConfig holds per-browser session settings
type SessionConfig struct {
	TTL time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  *loadServerConfig(),
		Data:    *loadDataConfig(),
		Cache:   *loadCacheConfig(),
		Session: SessionConfig{TTL: getEnvDurationOrDefault("SESSION_TTL", 2*time.Hour)},
		Log:     LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	layout, err := LoadLayout(os.Getenv("LAYOUT_FILE"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard layout")
	}
	config.Layout = *layout

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File:         getEnvOrDefault("DATA_FILE", "pulse39.csv"),
		ReasonPrefix: getEnvOrDefault("REASON_PREFIX", DefaultReasonPrefix),
		DemoMode:     getEnvBoolOrDefault("DEMO_MODE", false),
		DemoRows:     getEnvIntOrDefault("DEMO_ROWS", 2000),
		SampleSeed:   getEnvInt64OrDefault("SAMPLE_SEED", 0),
	}
}

func loadCacheConfig() *CacheConfig {
	return &CacheConfig{
		Size: getEnvIntOrDefault("CACHE_SIZE", 64),
	}
}

func validateConfig(config *Config) error {
	if !config.Data.DemoMode && strings.TrimSpace(config.Data.File) == "" {
		return errors.ConfigInvalid("DATA_FILE is required unless DEMO_MODE is enabled")
	}
	if config.Data.ReasonPrefix == "" {
		return errors.ConfigInvalid("REASON_PREFIX cannot be empty")
	}
	if config.Data.DemoMode && config.Data.DemoRows <= 0 {
		return errors.ConfigInvalid("DEMO_ROWS must be positive")
	}
	if config.Session.TTL <= 0 {
		return errors.ConfigInvalid("SESSION_TTL must be positive")
	}
	if config.Cache.Size < 0 {
		return errors.ConfigInvalid("CACHE_SIZE cannot be negative")
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be one of debug, release, test")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
