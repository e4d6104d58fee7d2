// Package config provides YAML-based configuration loading for the dilemma
// command: file locations, the default round count and terminal animation timing.
package config

import (
	"time"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

// Config contains all user-tunable settings.
type Config struct {
	StatsFile     string          `yaml:"stats_file"`     // Lifetime statistics JSON, relative to the working directory
	HistoryDB     string          `yaml:"history_db"`     // SQLite archive of completed games
	DefaultRounds int             `yaml:"default_rounds"` // Pre-filled value of the TUI rounds prompt
	Animation     AnimationConfig `yaml:"animation"`
}

// AnimationConfig controls the pacing of the console presentation.
type AnimationConfig struct {
	Enabled       bool `yaml:"enabled"`
	CharDelayMS   int  `yaml:"char_delay_ms"`   // Delay between characters of animated labels
	RevealDelayMS int  `yaml:"reveal_delay_ms"` // Pause before a round is revealed
	ResultPauseMS int  `yaml:"result_pause_ms"` // Pause after a round result
}

// CharDelay returns the per-character delay, or 0 when animation is off.
func (a AnimationConfig) CharDelay() time.Duration {
	return a.delay(a.CharDelayMS)
}

// RevealDelay returns the pause before a round result, or 0 when animation is off.
func (a AnimationConfig) RevealDelay() time.Duration {
	return a.delay(a.RevealDelayMS)
}

// ResultPause returns the pause after a round result, or 0 when animation is off.
func (a AnimationConfig) ResultPause() time.Duration {
	return a.delay(a.ResultPauseMS)
}

func (a AnimationConfig) delay(ms int) time.Duration {
	if !a.Enabled || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// Validate clamps out-of-range values in place.
func (c *Config) Validate() {
	def := Default()
	if c.StatsFile == "" {
		c.StatsFile = def.StatsFile
	}
	c.DefaultRounds = clamp(c.DefaultRounds, dilemma.MinRounds, dilemma.MaxRounds)
	c.Animation.CharDelayMS = max(c.Animation.CharDelayMS, 0)
	c.Animation.RevealDelayMS = max(c.Animation.RevealDelayMS, 0)
	c.Animation.ResultPauseMS = max(c.Animation.ResultPauseMS, 0)
}

// clamp restricts an int to [lo, hi].
func clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
