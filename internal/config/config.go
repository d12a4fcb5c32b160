// Package config loads engine configuration from environment variables.
// All variables use the DAILYLEARN_ prefix.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds all engine configuration.
type Config struct {
	Store    StoreConfig
	Log      LogConfig
	Timezone string
}

// StoreConfig selects and addresses the key-value backend.
type StoreConfig struct {
	Backend  string
	DBPath   string // SQLite file; empty means the default data dir
	RedisURL string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from environment variables with DAILYLEARN_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Store: StoreConfig{
			Backend:  envStr("DAILYLEARN_STORE", BackendSQLite),
			DBPath:   envStr("DAILYLEARN_DB", ""),
			RedisURL: envStr("DAILYLEARN_REDIS_URL", "redis://localhost:6379/0"),
		},
		Log: LogConfig{
			Level:  envStr("DAILYLEARN_LOG_LEVEL", "warn"),
			Format: envStr("DAILYLEARN_LOG_FORMAT", "console"),
			File:   envStr("DAILYLEARN_LOG_FILE", ""),
		},
		Timezone: envStr("DAILYLEARN_TZ", "Local"),
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendSQLite:
	case BackendRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("DAILYLEARN_REDIS_URL is required for the redis store")
		}
	default:
		return fmt.Errorf("DAILYLEARN_STORE must be 'memory', 'sqlite' or 'redis', got %q", c.Store.Backend)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("DAILYLEARN_LOG_FORMAT must be 'console' or 'json', got %q", c.Log.Format)
	}
	return nil
}

// Location resolves Timezone. "Local" and "" map to time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DAILYLEARN_TZ %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
