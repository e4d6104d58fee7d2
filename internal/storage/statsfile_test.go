package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

func TestStatsFileRoundTrip(t *testing.T) {
	f := NewStatsFile(filepath.Join(t.TempDir(), "game_stats.json"))

	want := dilemma.Statistics{
		GamesPlayed:            7,
		GamesWon:               3,
		GamesLost:              3,
		GamesTied:              1,
		TotalPoints:            212,
		BestScoreDifferential:  14,
		WorstScoreDifferential: -9,
	}

	if err := f.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestStatsFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_stats.json")
	f := NewStatsFile(path)

	if err := f.Save(dilemma.Statistics{GamesPlayed: 1, GamesWon: 1, TotalPoints: 9, BestScoreDifferential: 4}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}

	want := `{
  "games_played": 1,
  "games_won": 1,
  "games_lost": 0,
  "games_tied": 0,
  "total_points": 9,
  "best_score_differential": 4,
  "worst_score_differential": 0
}`
	if string(data) != want {
		t.Errorf("file contents:\n%s\nwant:\n%s", data, want)
	}
}

func TestStatsFileFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"empty file", ""},
		{"array", "[1, 2, 3]"},
		{"missing field", `{"games_played": 1, "games_won": 1, "games_lost": 0, "games_tied": 0, "total_points": 5, "best_score_differential": 2}`},
		{"null field", `{"games_played": null, "games_won": 1, "games_lost": 0, "games_tied": 0, "total_points": 5, "best_score_differential": 2, "worst_score_differential": 0}`},
		{"wrong type", `{"games_played": "one", "games_won": 1, "games_lost": 0, "games_tied": 0, "total_points": 5, "best_score_differential": 2, "worst_score_differential": 0}`},
		{"fractional", `{"games_played": 1.5, "games_won": 1, "games_lost": 0, "games_tied": 0, "total_points": 5, "best_score_differential": 2, "worst_score_differential": 0}`},
		{"negative counter", `{"games_played": -1, "games_won": 1, "games_lost": 0, "games_tied": 0, "total_points": 5, "best_score_differential": 2, "worst_score_differential": 0}`},
		{"truncated", `{"games_played": 1, "games_won": 1,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game_stats.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}

			got, err := NewStatsFile(path).Load()
			if err == nil {
				t.Error("Load() should report the malformed record")
			}
			if got != (dilemma.Statistics{}) {
				t.Errorf("Load() = %+v, want zero record", got)
			}
		})
	}
}

func TestStatsFileToleratesExtraFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_stats.json")
	content := `{"games_played": 2, "games_won": 1, "games_lost": 1, "games_tied": 0, "total_points": 20,
		"best_score_differential": 3, "worst_score_differential": -4, "favourite_move": "defect"}`
	os.WriteFile(path, []byte(content), 0o644)

	got, err := NewStatsFile(path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.GamesPlayed != 2 || got.WorstScoreDifferential != -4 {
		t.Errorf("Load() = %+v", got)
	}
}

func TestStatsFileMissing(t *testing.T) {
	got, err := NewStatsFile(filepath.Join(t.TempDir(), "nope.json")).Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
	if got != (dilemma.Statistics{}) {
		t.Errorf("Load() = %+v, want zero record", got)
	}
}

func TestStatsFileSaveFailure(t *testing.T) {
	// The parent directory does not exist.
	f := NewStatsFile(filepath.Join(t.TempDir(), "missing", "dir", "stats.json"))
	if err := f.Save(dilemma.Statistics{GamesPlayed: 1}); err == nil {
		t.Error("Save() into a missing directory should fail")
	}
}
