// SPDX-License-Identifier: MIT

// Package config loads the stepwise YAML configuration with STEPWISE_*
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepwise/playback"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STEPWISE_"

// DefaultMaxInput bounds the data arrays the HTTP API accepts. Every
// snapshot event copies the array, so trace size grows quickly with it.
const DefaultMaxInput = 100

// Config holds all stepwise configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Playback   PlaybackConfig   `yaml:"playback"`
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Containers ContainersConfig `yaml:"containers"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// PlaybackConfig configures pacing for interactive runs.
type PlaybackConfig struct {
	Delay  string `yaml:"delay"`  // Go duration, e.g. "300ms"
	Slider int    `yaml:"slider"` // 100..1000; when set it wins over Delay
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	MaxInput        int    `yaml:"max_input"` // longest data array a run may request
}

// StoreConfig selects and configures the trace store.
type StoreConfig struct {
	Backend string       `yaml:"backend"` // memory, redis, sqlite
	Redis   RedisConfig  `yaml:"redis"`
	SQLite  SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig configures the redis trace store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	TTL      string `yaml:"ttl"` // empty or "0" keeps traces forever
}

// SQLiteConfig configures the embedded trace store.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// ContainersConfig sizes the per-session containers.
type ContainersConfig struct {
	ArrayCapacity int `yaml:"array_capacity"`
	StackDepth    int `yaml:"stack_depth"`
	QueueCapacity int `yaml:"queue_capacity"`
	HashBuckets   int `yaml:"hash_buckets"`
}

// Store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Playback: PlaybackConfig{
			Delay: "300ms",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "10s",
			ShutdownTimeout: "5s",
			MaxInput:        DefaultMaxInput,
		},
		Store: StoreConfig{
			Backend: BackendMemory,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "stepwise",
				TTL:    "24h",
			},
			SQLite: SQLiteConfig{
				Path: "data/stepwise.db",
			},
		},
		Containers: ContainersConfig{
			ArrayCapacity: 10,
			StackDepth:    8,
			QueueCapacity: 10,
			HashBuckets:   10,
		},
	}
}

// Load reads configuration from a YAML file over the defaults. A missing
// file yields the defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	str := func(name string, dst *string) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)
	str("DELAY", &c.Playback.Delay)
	num("SLIDER", &c.Playback.Slider)
	str("ADDR", &c.Server.Addr)
	num("MAX_INPUT", &c.Server.MaxInput)
	str("STORE", &c.Store.Backend)
	str("REDIS_ADDR", &c.Store.Redis.Addr)
	str("REDIS_PASSWORD", &c.Store.Redis.Password)
	num("REDIS_DB", &c.Store.Redis.DB)
	str("REDIS_PREFIX", &c.Store.Redis.Prefix)
	str("REDIS_TTL", &c.Store.Redis.TTL)
	str("SQLITE_PATH", &c.Store.SQLite.Path)
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate checks enumerations and sizes.
func (c *Config) Validate() error {
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid logging format: %s (valid: json, console)", c.Logging.Format)
	}
	switch c.Store.Backend {
	case BackendMemory, BackendRedis, BackendSQLite:
	default:
		return fmt.Errorf("invalid store backend: %s (valid: memory, redis, sqlite)", c.Store.Backend)
	}
	if c.Playback.Slider != 0 && (c.Playback.Slider < 100 || c.Playback.Slider > 1000) {
		return fmt.Errorf("invalid playback slider: %d (valid: 100..1000)", c.Playback.Slider)
	}
	if c.Server.MaxInput < 1 {
		return fmt.Errorf("invalid server max_input: %d (must be ≥ 1)", c.Server.MaxInput)
	}
	cs := c.Containers
	if cs.ArrayCapacity < 1 || cs.StackDepth < 1 || cs.QueueCapacity < 1 || cs.HashBuckets < 1 {
		return fmt.Errorf("invalid container sizes: %+v (all must be ≥ 1)", cs)
	}

	return nil
}

// GetDelay returns the playback delay. A slider value wins over Delay.
func (c *Config) GetDelay() time.Duration {
	if c.Playback.Slider > 0 {
		return playback.DelayFromSlider(c.Playback.Slider)
	}

	return duration(c.Playback.Delay, 300*time.Millisecond)
}

// GetReadTimeout returns the server read timeout.
func (c *Config) GetReadTimeout() time.Duration {
	return duration(c.Server.ReadTimeout, 10*time.Second)
}

// GetShutdownTimeout returns the graceful shutdown timeout.
func (c *Config) GetShutdownTimeout() time.Duration {
	return duration(c.Server.ShutdownTimeout, 5*time.Second)
}

// GetRedisTTL returns the trace TTL; 0 means no expiry.
func (c *Config) GetRedisTTL() time.Duration {
	return duration(c.Store.Redis.TTL, 0)
}

func duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return def
	}

	return d
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
