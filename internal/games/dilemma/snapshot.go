package dilemma

import "strings"

// Snapshot captures the complete game state for presentation and archiving.
type Snapshot struct {
	Difficulty    Difficulty
	Phase         Phase
	Round         int
	TotalRounds   int
	PlayerScore   int
	OpponentScore int
	History       []HistoryEntry
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Difficulty:    g.difficulty,
		Phase:         g.Phase(),
		Round:         g.round,
		TotalRounds:   g.totalRounds,
		PlayerScore:   g.playerScore,
		OpponentScore: g.opponentScore,
		History:       g.History(),
	}
}

// Progress returns the fraction of rounds completed, in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.TotalRounds <= 0 {
		return 0
	}
	return float64(s.Round) / float64(s.TotalRounds)
}

// Outcome classifies the scores in the snapshot.
func (s Snapshot) Outcome() Outcome {
	return compare(s.PlayerScore, s.OpponentScore)
}

// EncodeHistory renders a history as comma-separated move pairs, e.g. "CC,CD,DD".
// The player's move comes first in each pair.
func EncodeHistory(history []HistoryEntry) string {
	pairs := make([]string, len(history))
	for i, h := range history {
		pairs[i] = h.Player.Letter() + h.Opponent.Letter()
	}
	return strings.Join(pairs, ",")
}

// DecodeHistory parses the output of EncodeHistory.
// Malformed pairs are skipped.
func DecodeHistory(s string) []HistoryEntry {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	history := make([]HistoryEntry, 0, len(parts))
	for _, p := range parts {
		if len(p) != 2 {
			continue
		}
		player, ok1 := moveFromLetter(p[0])
		opponent, ok2 := moveFromLetter(p[1])
		if !ok1 || !ok2 {
			continue
		}
		history = append(history, HistoryEntry{Player: player, Opponent: opponent})
	}
	return history
}

func moveFromLetter(b byte) (Move, bool) {
	switch b {
	case 'C':
		return Cooperate, true
	case 'D':
		return Defect, true
	}
	return Cooperate, false
}
