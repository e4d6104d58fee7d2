package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/dilemma/internal/config"
	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

// fixedRand always returns the same draw.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

type memStats struct {
	stats   dilemma.Statistics
	loadErr error
	saveErr error
	saves   int
}

func (m *memStats) Load() (dilemma.Statistics, error) {
	if m.loadErr != nil {
		return dilemma.Statistics{}, m.loadErr
	}
	return m.stats, nil
}

func (m *memStats) Save(s dilemma.Statistics) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stats = s
	return nil
}

type memArchive struct {
	games []dilemma.Snapshot
}

func (a *memArchive) SaveGame(snap dilemma.Snapshot) (string, error) {
	a.games = append(a.games, snap)
	return "game", nil
}

func newTestSession(input string, opts Options) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, config.Default().Animation, false)
	if opts.Rand == nil {
		// Easy cooperates on any draw below 0.7.
		opts.Rand = fixedRand(0.1)
	}
	return NewSession(c, opts), &out
}

func TestSessionEasyGame(t *testing.T) {
	store := &memStats{}
	archive := &memArchive{}
	// menu, difficulty, rounds, three moves, enter, play again, menu quit
	input := "1\n1\n3\n1\n1\n2\n\nn\n4\n"
	s, out := newTestSession(input, Options{Stats: store, Archive: archive})

	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := dilemma.Statistics{
		GamesPlayed:           1,
		GamesWon:              1,
		TotalPoints:           11,
		BestScoreDifferential: 5,
	}
	if store.stats != want {
		t.Errorf("saved stats = %+v, want %+v", store.stats, want)
	}
	if len(archive.games) != 1 {
		t.Fatalf("archived %d games, want 1", len(archive.games))
	}
	if got := dilemma.EncodeHistory(archive.games[0].History); got != "CC,CC,DC" {
		t.Errorf("archived moves = %q, want CC,CC,DC", got)
	}

	text := out.String()
	for _, want := range []string{"MUTUAL COOPERATION", "YOU EXPLOITED", "YOU WIN!", "Goodbye"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSessionRejectsBadRounds(t *testing.T) {
	store := &memStats{}
	input := "1\n1\n0\n51\nabc\n-3\n2\n1\n1\n\nn\n4\n"
	s, out := newTestSession(input, Options{Stats: store})

	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	text := out.String()
	if got := strings.Count(text, "between 1 and 50"); got != 3 {
		t.Errorf("range message shown %d times, want 3", got)
	}
	if got := strings.Count(text, "valid number"); got != 1 {
		t.Errorf("number message shown %d times, want 1", got)
	}
	if store.stats.GamesPlayed != 1 || store.stats.TotalPoints != 6 {
		t.Errorf("saved stats = %+v, want one 2-round game with 6 points", store.stats)
	}
}

func TestSessionRejectsBadTokens(t *testing.T) {
	store := &memStats{}
	input := "9\n1\nx\n1\n1\n3\n1\n\nn\n4\n"
	s, out := newTestSession(input, Options{Stats: store})

	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	text := out.String()
	if got := strings.Count(text, "Invalid choice"); got != 2 {
		t.Errorf("invalid choice shown %d times, want 2", got)
	}
	if got := strings.Count(text, "Invalid move"); got != 1 {
		t.Errorf("invalid move shown %d times, want 1", got)
	}
	if store.stats.GamesPlayed != 1 {
		t.Errorf("games played = %d, want 1", store.stats.GamesPlayed)
	}
}

func TestSessionPlayAgainKeepsDifficulty(t *testing.T) {
	store := &memStats{}
	archive := &memArchive{}
	input := "1\n2\n1\n1\n\nY\n2\n2\n2\n\nn\n4\n"
	s, _ := newTestSession(input, Options{Stats: store, Archive: archive})

	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if store.stats.GamesPlayed != 2 {
		t.Errorf("games played = %d, want 2", store.stats.GamesPlayed)
	}
	if len(archive.games) != 2 {
		t.Fatalf("archived %d games, want 2", len(archive.games))
	}
	for i, g := range archive.games {
		if g.Difficulty != dilemma.Medium {
			t.Errorf("game %d difficulty = %v, want Medium", i, g.Difficulty)
		}
	}
	if archive.games[1].TotalRounds != 2 {
		t.Errorf("second game rounds = %d, want 2", archive.games[1].TotalRounds)
	}
}

func TestSessionEndOfInputQuits(t *testing.T) {
	store := &memStats{}
	archive := &memArchive{}
	// Input ends in the middle of a five-round game.
	s, _ := newTestSession("1\n1\n5\n1\n", Options{Stats: store, Archive: archive})

	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v, want clean exit", err)
	}
	if store.saves != 0 {
		t.Errorf("statistics saved %d times for an abandoned game", store.saves)
	}
	if len(archive.games) != 0 {
		t.Errorf("abandoned game was archived")
	}
}

func TestSessionPresetsSkipPrompts(t *testing.T) {
	store := &memStats{}
	archive := &memArchive{}
	hard := dilemma.Hard
	// one move, enter, decline, quit
	s, out := newTestSession("2\n\nn\n4\n", Options{
		Stats:      store,
		Archive:    archive,
		Difficulty: &hard,
		Rounds:     1,
	})

	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(archive.games) != 1 {
		t.Fatalf("archived %d games, want 1", len(archive.games))
	}
	if g := archive.games[0]; g.Difficulty != dilemma.Hard || g.TotalRounds != 1 {
		t.Errorf("game = %v with %d rounds, want Hard with 1", g.Difficulty, g.TotalRounds)
	}
	if strings.Contains(out.String(), "SELECT DIFFICULTY") {
		t.Error("difficulty menu shown despite preset")
	}
}

func TestSessionPersistenceFailuresDoNotStopPlay(t *testing.T) {
	store := &memStats{
		loadErr: errors.New("corrupt"),
		saveErr: errors.New("disk full"),
	}
	s, out := newTestSession("1\n1\n1\n1\n\nn\n4\n", Options{Stats: store})

	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if store.saves != 1 {
		t.Errorf("Save called %d times, want 1", store.saves)
	}
	if !strings.Contains(out.String(), "GAME OVER") {
		t.Error("summary not shown after save failure")
	}
}

func TestSessionShowStats(t *testing.T) {
	tests := []struct {
		name  string
		stats dilemma.Statistics
		want  string
	}{
		{"empty", dilemma.Statistics{}, "No games played yet"},
		{"played", dilemma.Statistics{GamesPlayed: 2, GamesWon: 1, GamesLost: 1}, "50.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSession("2\n\n4\n", Options{Stats: &memStats{stats: tt.stats}})
			if err := s.Run(); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("stats screen missing %q", tt.want)
			}
		})
	}
}

func TestSessionShowRules(t *testing.T) {
	s, out := newTestSession("3\n\n4\n", Options{Stats: &memStats{}})
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !strings.Contains(out.String(), "PAYOFF MATRIX") {
		t.Error("rules screen missing payoff matrix")
	}
}

func TestConsoleAnimate(t *testing.T) {
	var out bytes.Buffer
	anim := config.AnimationConfig{Enabled: true, CharDelayMS: 5}
	c := New(strings.NewReader(""), &out, anim, true)

	var slept []time.Duration
	c.sleep = func(d time.Duration) { slept = append(slept, d) }

	c.Animate("abc")
	if out.String() != "abc\n" {
		t.Errorf("Animate() wrote %q", out.String())
	}
	if len(slept) != 3 || slept[0] != 5*time.Millisecond {
		t.Errorf("slept %v, want three 5ms waits", slept)
	}
}

func TestConsoleNonInteractiveSkipsAnimation(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, config.Default().Animation, false)
	c.sleep = func(time.Duration) { t.Fatal("sleep called on non-interactive console") }

	c.Animate("abc")
	c.Pause(time.Second)
	c.ClearScreen()
	if out.String() != "abc\n" {
		t.Errorf("output = %q, want plain text", out.String())
	}
}

func TestConsoleReadsLastLineWithoutNewline(t *testing.T) {
	c := New(strings.NewReader("2"), &bytes.Buffer{}, config.AnimationConfig{}, false)
	m, err := c.ReadMove()
	if err != nil {
		t.Fatalf("ReadMove() failed: %v", err)
	}
	if m != dilemma.Defect {
		t.Errorf("ReadMove() = %v, want Defect", m)
	}
}
