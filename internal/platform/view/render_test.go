package view

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		round, total int
		filled       int
	}{
		{0, 10, 0},
		{5, 10, 15},
		{10, 10, 30},
		{1, 3, 10},
		{0, 0, 0},
	}

	for _, tt := range tests {
		bar := ProgressBar(tt.round, tt.total)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("ProgressBar(%d, %d) filled %d cells, want %d", tt.round, tt.total, got, tt.filled)
		}
		if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != barWidth {
			t.Errorf("ProgressBar(%d, %d) has %d cells, want %d", tt.round, tt.total, got, barWidth)
		}
	}
}

func TestPayoffMatrixListsAllCells(t *testing.T) {
	out := PayoffMatrix()
	for _, want := range []string{
		"You: 3, Computer: 3",
		"You: 0, Computer: 5",
		"You: 5, Computer: 0",
		"You: 1, Computer: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PayoffMatrix() missing %q", want)
		}
	}
}

func TestRoundBanner(t *testing.T) {
	tests := []struct {
		player, opponent dilemma.Move
		want             string
	}{
		{dilemma.Cooperate, dilemma.Cooperate, "MUTUAL COOPERATION"},
		{dilemma.Defect, dilemma.Defect, "MUTUAL DEFECTION"},
		{dilemma.Defect, dilemma.Cooperate, "YOU EXPLOITED"},
		{dilemma.Cooperate, dilemma.Defect, "YOU WERE EXPLOITED"},
	}

	for _, tt := range tests {
		res := dilemma.RoundResult{Round: 1, PlayerMove: tt.player, OpponentMove: tt.opponent}
		if got := RoundBanner(res); !strings.Contains(got, tt.want) {
			t.Errorf("RoundBanner(%v, %v) = %q, want %q", tt.player, tt.opponent, got, tt.want)
		}
	}
}

func TestStatsReportEmpty(t *testing.T) {
	out := StatsReport(dilemma.Statistics{})
	if !strings.Contains(out, "No games played yet") {
		t.Errorf("StatsReport() for empty stats = %q", out)
	}
	if strings.Contains(out, "Win Rate") {
		t.Error("StatsReport() for empty stats should not list counters")
	}
}

func TestStatsReport(t *testing.T) {
	out := StatsReport(dilemma.Statistics{
		GamesPlayed:            4,
		GamesWon:               1,
		GamesLost:              2,
		GamesTied:              1,
		TotalPoints:            88,
		BestScoreDifferential:  6,
		WorstScoreDifferential: -3,
	})
	for _, want := range []string{"Games Played", "25.0%", "88", "+6", "-3"} {
		if !strings.Contains(out, want) {
			t.Errorf("StatsReport() missing %q in:\n%s", want, out)
		}
	}
}

func TestGameSummary(t *testing.T) {
	snap := dilemma.Snapshot{
		Difficulty:    dilemma.Easy,
		Phase:         dilemma.PhaseFinished,
		Round:         2,
		TotalRounds:   2,
		PlayerScore:   8,
		OpponentScore: 3,
		History: []dilemma.HistoryEntry{
			{Player: dilemma.Cooperate, Opponent: dilemma.Cooperate},
			{Player: dilemma.Defect, Opponent: dilemma.Cooperate},
		},
	}
	out := GameSummary(snap, dilemma.Statistics{GamesPlayed: 1, GamesWon: 1})
	for _, want := range []string{"YOU WIN!", "+5", "cooperated in 1 of 2 rounds", "100.0% won", "1W / 0L / 0T"} {
		if !strings.Contains(out, want) {
			t.Errorf("GameSummary() missing %q in:\n%s", want, out)
		}
	}
}

func TestGameSummaryShowsRoundsDifficultyAndRecord(t *testing.T) {
	history := make([]dilemma.HistoryEntry, 7)
	for i := range history {
		history[i] = dilemma.HistoryEntry{Player: dilemma.Defect, Opponent: dilemma.Defect}
	}
	history[6].Opponent = dilemma.Cooperate
	history[0].Player = dilemma.Cooperate

	snap := dilemma.Snapshot{
		Difficulty:    dilemma.Legendary,
		Phase:         dilemma.PhaseFinished,
		Round:         7,
		TotalRounds:   7,
		PlayerScore:   10,
		OpponentScore: 11,
		History:       history,
	}
	stats := dilemma.Statistics{GamesPlayed: 6, GamesWon: 2, GamesLost: 3, GamesTied: 1}
	out := GameSummary(snap, stats)

	tests := []struct {
		name string
		want string
	}{
		{"rounds", "Rounds:      7"},
		{"difficulty", "Legendary"},
		{"record", "2W / 3L / 1T"},
		{"lifetime", "6 played, 33.3% won"},
		{"outcome", "YOU LOSE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(out, tt.want) {
				t.Errorf("GameSummary() missing %q in:\n%s", tt.want, out)
			}
		})
	}
}

func TestGameStateShowsUpcomingRound(t *testing.T) {
	snap := dilemma.Snapshot{Difficulty: dilemma.Hard, Round: 2, TotalRounds: 5}
	out := GameState(snap)
	if !strings.Contains(out, "Round 3 of 5") {
		t.Errorf("GameState() = %q, want upcoming round 3 of 5", out)
	}
	if !strings.Contains(out, "2/5") {
		t.Errorf("GameState() = %q, want completed count 2/5", out)
	}
}
