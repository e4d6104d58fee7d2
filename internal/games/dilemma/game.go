package dilemma

import (
	"errors"
	"fmt"
)

// Round count limits for one game.
const (
	MinRounds = 1
	MaxRounds = 50
)

// Game state machine errors.
var (
	ErrInvalidRounds = errors.New("dilemma: total rounds must be between 1 and 50")
	ErrInvalidMove   = errors.New("dilemma: invalid move")
	ErrGameFinished  = errors.New("dilemma: game already finished")
)

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseFinished
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome classifies a round or a game from the player's point of view.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "tie"
	}
}

// compare classifies a pair of scores.
func compare(player, opponent int) Outcome {
	switch {
	case player > opponent:
		return OutcomeWin
	case player < opponent:
		return OutcomeLoss
	default:
		return OutcomeTie
	}
}

// RoundResult describes one resolved round.
type RoundResult struct {
	Round          int
	PlayerMove     Move
	OpponentMove   Move
	PlayerPoints   int
	OpponentPoints int
}

// Outcome reports who earned more points this round.
func (r RoundResult) Outcome() Outcome {
	return compare(r.PlayerPoints, r.OpponentPoints)
}

// Game tracks scores and move history across a fixed number of rounds.
// Invariant: len(history) == round <= totalRounds.
type Game struct {
	difficulty    Difficulty
	totalRounds   int
	round         int
	playerScore   int
	opponentScore int
	history       []HistoryEntry
	rng           RandSource
}

// NewGame creates a game that has not started yet.
func NewGame(d Difficulty, totalRounds int, rng RandSource) (*Game, error) {
	if totalRounds < MinRounds || totalRounds > MaxRounds {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRounds, totalRounds)
	}
	if !d.Valid() {
		return nil, fmt.Errorf("dilemma: unknown difficulty %d", int(d))
	}
	if rng == nil {
		return nil, errors.New("dilemma: nil random source")
	}
	return &Game{
		difficulty:  d,
		totalRounds: totalRounds,
		history:     make([]HistoryEntry, 0, totalRounds),
		rng:         rng,
	}, nil
}

// PlayRound resolves the next round with the player's move.
// The opponent sees only the rounds completed before this one.
func (g *Game) PlayRound(player Move) (RoundResult, error) {
	if g.Finished() {
		return RoundResult{}, ErrGameFinished
	}
	if !player.Valid() {
		return RoundResult{}, fmt.Errorf("%w: %d", ErrInvalidMove, int(player))
	}

	opponent := NextMove(g.history, g.difficulty, g.rng)
	playerPts, opponentPts := Payoff(player, opponent)

	g.round++
	g.playerScore += playerPts
	g.opponentScore += opponentPts
	g.history = append(g.history, HistoryEntry{Player: player, Opponent: opponent})

	return RoundResult{
		Round:          g.round,
		PlayerMove:     player,
		OpponentMove:   opponent,
		PlayerPoints:   playerPts,
		OpponentPoints: opponentPts,
	}, nil
}

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase {
	switch {
	case g.round == 0:
		return PhaseNotStarted
	case g.round >= g.totalRounds:
		return PhaseFinished
	default:
		return PhaseInProgress
	}
}

// Finished reports whether all rounds have been played.
func (g *Game) Finished() bool {
	return g.round >= g.totalRounds
}

// Difficulty returns the tier chosen for this game.
func (g *Game) Difficulty() Difficulty { return g.difficulty }

// TotalRounds returns the number of rounds fixed at creation.
func (g *Game) TotalRounds() int { return g.totalRounds }

// Round returns the number of completed rounds.
func (g *Game) Round() int { return g.round }

// PlayerScore returns the player's cumulative score.
func (g *Game) PlayerScore() int { return g.playerScore }

// OpponentScore returns the opponent's cumulative score.
func (g *Game) OpponentScore() int { return g.opponentScore }

// Differential returns player score minus opponent score.
func (g *Game) Differential() int {
	return g.playerScore - g.opponentScore
}

// Outcome classifies the game from the player's point of view.
// Meaningful once the game is finished.
func (g *Game) Outcome() Outcome {
	return compare(g.playerScore, g.opponentScore)
}

// History returns a copy of the completed rounds.
func (g *Game) History() []HistoryEntry {
	out := make([]HistoryEntry, len(g.history))
	copy(out, g.history)
	return out
}
