package config

import (
	_ "embed"
)

//go:embed defaults/dilemma.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration.
// The embedded defaults/dilemma.yaml carries the same values.
func Default() Config {
	return Config{
		StatsFile:     "game_stats.json",
		HistoryDB:     "~/.dilemma/history.db",
		DefaultRounds: 10,
		Animation: AnimationConfig{
			Enabled:       true,
			CharDelayMS:   20,
			RevealDelayMS: 800,
			ResultPauseMS: 1500,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
