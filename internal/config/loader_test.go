package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults %+v differ from Default() %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	data := []byte("stats_file: my_stats.json\ndefault_rounds: 25\nanimation:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.StatsFile != "my_stats.json" {
		t.Errorf("StatsFile = %q, want my_stats.json", cfg.StatsFile)
	}
	if cfg.DefaultRounds != 25 {
		t.Errorf("DefaultRounds = %d, want 25", cfg.DefaultRounds)
	}
	// Missing keys keep their defaults.
	if cfg.HistoryDB != Default().HistoryDB {
		t.Errorf("HistoryDB = %q, want default %q", cfg.HistoryDB, Default().HistoryDB)
	}
	if cfg.Animation.Enabled {
		t.Error("Animation.Enabled should be false")
	}
	if cfg.Animation.CharDelay() != 0 {
		t.Errorf("CharDelay() with animation disabled = %v, want 0", cfg.Animation.CharDelay())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	os.WriteFile(path, []byte("default_rounds: [oops"), 0o600)
	cfg, err := Load(path)
	if err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
	if cfg != Default() {
		t.Error("Load() failure should still return defaults")
	}
}

func TestParseEmptyHistoryDBDisablesArchive(t *testing.T) {
	cfg, err := Parse([]byte("history_db: \"\"\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.HistoryDB != "" {
		t.Errorf("HistoryDB = %q, want empty", cfg.HistoryDB)
	}
	if cfg.StatsFile != Default().StatsFile {
		t.Errorf("StatsFile = %q, want default %q", cfg.StatsFile, Default().StatsFile)
	}
}

func TestValidateClamps(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		rounds int
	}{
		{"too many rounds", "default_rounds: 99", 50},
		{"zero rounds", "default_rounds: 0", 1},
		{"negative rounds", "default_rounds: -4", 1},
		{"in range", "default_rounds: 30", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if cfg.DefaultRounds != tt.rounds {
				t.Errorf("DefaultRounds = %d, want %d", cfg.DefaultRounds, tt.rounds)
			}
		})
	}

	cfg, _ := Parse([]byte("stats_file: \"\"\nanimation:\n  char_delay_ms: -10\n"))
	if cfg.StatsFile != Default().StatsFile {
		t.Errorf("empty StatsFile not restored, got %q", cfg.StatsFile)
	}
	if cfg.Animation.CharDelayMS != 0 {
		t.Errorf("negative CharDelayMS not clamped, got %d", cfg.Animation.CharDelayMS)
	}
}

func TestAnimationDelays(t *testing.T) {
	a := AnimationConfig{Enabled: true, CharDelayMS: 20, RevealDelayMS: 800, ResultPauseMS: 1500}
	if a.CharDelay() != 20*time.Millisecond {
		t.Errorf("CharDelay() = %v", a.CharDelay())
	}
	if a.RevealDelay() != 800*time.Millisecond {
		t.Errorf("RevealDelay() = %v", a.RevealDelay())
	}
	if a.ResultPause() != 1500*time.Millisecond {
		t.Errorf("ResultPause() = %v", a.ResultPause())
	}
}
