package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the engine's environment-driven configuration.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// RedisURL points at the snapshot store collaborator.
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	// TickInterval is the minimum time between executed ticks.
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`

	// FeedCapacity bounds the shared event feed.
	FeedCapacity int `env:"EVENT_FEED_CAPACITY" envDefault:"50"`

	// DecayHorizon is how long shared events live before a purge drops them.
	DecayHorizon time.Duration `env:"EVENT_DECAY_HORIZON" envDefault:"30s"`

	// MemoryCapacity bounds each agent's private sensory memory.
	MemoryCapacity int `env:"AGENT_MEMORY_CAPACITY" envDefault:"10"`

	// MeleeRange is the distance at which a chase closes into a fight.
	MeleeRange float64 `env:"MELEE_RANGE" envDefault:"2.0"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level string to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
