package dilemma

import (
	"errors"
	"testing"
)

type finalScore struct {
	player, opponent int
}

// permutations returns every ordering of games.
func permutations(games []finalScore) [][]finalScore {
	if len(games) <= 1 {
		return [][]finalScore{append([]finalScore(nil), games...)}
	}
	var out [][]finalScore
	for i := range games {
		rest := make([]finalScore, 0, len(games)-1)
		rest = append(rest, games[:i]...)
		rest = append(rest, games[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]finalScore{games[i]}, p...))
		}
	}
	return out
}

func TestStatisticsFoldIsOrderIndependent(t *testing.T) {
	// Differentials 3, -2, 7, -5.
	games := []finalScore{{10, 7}, {4, 6}, {12, 5}, {0, 5}}

	orders := permutations(games)
	if len(orders) != 24 {
		t.Fatalf("expected 24 orderings, got %d", len(orders))
	}

	want := Statistics{
		GamesPlayed:            4,
		GamesWon:               2,
		GamesLost:              2,
		GamesTied:              0,
		TotalPoints:            26,
		BestScoreDifferential:  7,
		WorstScoreDifferential: -5,
	}

	for _, order := range orders {
		var s Statistics
		for _, g := range order {
			s = recordScores(s, g.player, g.opponent)
		}
		if s != want {
			t.Fatalf("fold of %v = %+v, want %+v", order, s, want)
		}
	}
}

func TestRecordGameClassification(t *testing.T) {
	tests := []struct {
		name             string
		player, opponent int
		won, lost, tied  int
		best, worst      int
	}{
		{"win", 9, 4, 1, 0, 0, 5, 0},
		{"loss", 2, 8, 0, 1, 0, 0, -6},
		{"tie", 6, 6, 0, 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := recordScores(Statistics{}, tt.player, tt.opponent)
			if s.GamesPlayed != 1 {
				t.Errorf("games played = %d, want 1", s.GamesPlayed)
			}
			if s.GamesWon != tt.won || s.GamesLost != tt.lost || s.GamesTied != tt.tied {
				t.Errorf("W/L/T = %d/%d/%d, want %d/%d/%d",
					s.GamesWon, s.GamesLost, s.GamesTied, tt.won, tt.lost, tt.tied)
			}
			if s.TotalPoints != tt.player {
				t.Errorf("total points = %d, want %d", s.TotalPoints, tt.player)
			}
			if s.BestScoreDifferential != tt.best || s.WorstScoreDifferential != tt.worst {
				t.Errorf("best/worst = %d/%d, want %d/%d",
					s.BestScoreDifferential, s.WorstScoreDifferential, tt.best, tt.worst)
			}
		})
	}
}

func TestRecordGameRejectsUnfinished(t *testing.T) {
	g, _ := NewGame(Easy, 3, script(0.1))
	g.PlayRound(Cooperate)

	before := Statistics{GamesPlayed: 2, GamesWon: 2, TotalPoints: 20, BestScoreDifferential: 4}
	after, err := RecordGame(before, g)
	if !errors.Is(err, ErrGameNotFinished) {
		t.Fatalf("RecordGame() error = %v, want ErrGameNotFinished", err)
	}
	if after != before {
		t.Errorf("statistics changed for unfinished game: %+v", after)
	}

	if _, err := RecordGame(before, nil); !errors.Is(err, ErrGameNotFinished) {
		t.Errorf("RecordGame(nil) error = %v, want ErrGameNotFinished", err)
	}
}

func TestWinRate(t *testing.T) {
	if rate := (Statistics{}).WinRate(); rate != 0 {
		t.Errorf("WinRate() with no games = %v, want 0", rate)
	}
	s := Statistics{GamesPlayed: 4, GamesWon: 1}
	if rate := s.WinRate(); rate != 25 {
		t.Errorf("WinRate() = %v, want 25", rate)
	}
}
