// Package demo holds configuration and appearance helpers for the demo binary.
package demo

import (
	"os"
	"strconv"
	"time"
)

// Config holds the demo application's tunables so the accordion's behavior
// can be exercised without recompiling.
type Config struct {
	// Debug enables debug logging.
	Debug bool

	// MaxOpen caps how many sections may be expanded at once.
	MaxOpen int

	// StaggerDelay is the base delay before the initial opening cascade.
	StaggerDelay time.Duration
}

// DefaultConfig returns the demo defaults: two open sections and a 250ms
// opening cascade.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		MaxOpen:      2,
		StaggerDelay: 250 * time.Millisecond,
	}
}

// ConfigFromEnv builds a Config from environment variables:
// CONCERTINA_DEBUG, CONCERTINA_MAX_OPEN and CONCERTINA_STAGGER_MS.
// Unset or malformed values keep their defaults.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CONCERTINA_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}
	if v := os.Getenv("CONCERTINA_MAX_OPEN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxOpen = n
		}
	}
	if v := os.Getenv("CONCERTINA_STAGGER_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.StaggerDelay = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg
}
