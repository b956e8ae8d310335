package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected development, got %q", cfg.Environment)
	}
	if cfg.TickInterval != time.Second {
		t.Errorf("expected 1s tick interval, got %v", cfg.TickInterval)
	}
	if cfg.FeedCapacity != 50 {
		t.Errorf("expected feed capacity 50, got %d", cfg.FeedCapacity)
	}
	if cfg.DecayHorizon != 30*time.Second {
		t.Errorf("expected 30s decay horizon, got %v", cfg.DecayHorizon)
	}
	if cfg.MemoryCapacity != 10 {
		t.Errorf("expected memory capacity 10, got %d", cfg.MemoryCapacity)
	}
	if cfg.MeleeRange != 2.0 {
		t.Errorf("expected melee range 2.0, got %f", cfg.MeleeRange)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("EVENT_FEED_CAPACITY", "100")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.TickInterval)
	}
	if cfg.FeedCapacity != 100 {
		t.Errorf("expected 100, got %d", cfg.FeedCapacity)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"INFO", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			if got := cfg.SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
