package core

import "github.com/vovakirdan/dilemma/internal/config"

// RuntimeConfig contains settings passed to the front ends at startup.
type RuntimeConfig struct {
	ScreenW       int   // Screen width in characters
	ScreenH       int   // Screen height in characters
	Seed          int64 // RNG seed, 0 means seeded from the clock
	DefaultRounds int   // Pre-filled round count in the full-screen UI
	Animation     config.AnimationConfig
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	cfg := config.Default()
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		DefaultRounds: cfg.DefaultRounds,
		Animation:     cfg.Animation,
	}
}
