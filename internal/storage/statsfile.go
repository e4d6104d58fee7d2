package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

// ErrMalformedStats is returned when the statistics file does not hold a complete record.
var ErrMalformedStats = errors.New("storage: malformed statistics record")

// StatsFile persists lifetime statistics as a JSON document.
type StatsFile struct {
	path string
}

// NewStatsFile returns a store backed by the file at path.
func NewStatsFile(path string) *StatsFile {
	return &StatsFile{path: path}
}

// Path returns the backing file path.
func (f *StatsFile) Path() string {
	return f.path
}

// statsRecord mirrors dilemma.Statistics with pointers so missing keys are detected.
type statsRecord struct {
	GamesPlayed            *int `json:"games_played"`
	GamesWon               *int `json:"games_won"`
	GamesLost              *int `json:"games_lost"`
	GamesTied              *int `json:"games_tied"`
	TotalPoints            *int `json:"total_points"`
	BestScoreDifferential  *int `json:"best_score_differential"`
	WorstScoreDifferential *int `json:"worst_score_differential"`
}

// Load reads the statistics record.
// Any failure (missing, unreadable or malformed file) yields the zero record
// together with the cause; callers that only want the record can ignore the error.
func (f *StatsFile) Load() (dilemma.Statistics, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return dilemma.Statistics{}, fmt.Errorf("storage: cannot read statistics: %w", err)
	}

	stats, err := decodeStats(data)
	if err != nil {
		return dilemma.Statistics{}, err
	}
	return stats, nil
}

// Save overwrites the file with the full record.
func (f *StatsFile) Save(stats dilemma.Statistics) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode statistics: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write statistics: %w", err)
	}
	return nil
}

func decodeStats(data []byte) (dilemma.Statistics, error) {
	var rec statsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return dilemma.Statistics{}, fmt.Errorf("%w: %v", ErrMalformedStats, err)
	}

	fields := []*int{
		rec.GamesPlayed, rec.GamesWon, rec.GamesLost, rec.GamesTied,
		rec.TotalPoints, rec.BestScoreDifferential, rec.WorstScoreDifferential,
	}
	for _, v := range fields {
		if v == nil {
			return dilemma.Statistics{}, fmt.Errorf("%w: missing field", ErrMalformedStats)
		}
	}

	// Game counters are unsigned in the record format.
	for _, v := range fields[:4] {
		if *v < 0 {
			return dilemma.Statistics{}, fmt.Errorf("%w: negative counter", ErrMalformedStats)
		}
	}

	return dilemma.Statistics{
		GamesPlayed:            *rec.GamesPlayed,
		GamesWon:               *rec.GamesWon,
		GamesLost:              *rec.GamesLost,
		GamesTied:              *rec.GamesTied,
		TotalPoints:            *rec.TotalPoints,
		BestScoreDifferential:  *rec.BestScoreDifferential,
		WorstScoreDifferential: *rec.WorstScoreDifferential,
	}, nil
}
