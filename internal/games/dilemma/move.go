// Package dilemma implements the Iterated Prisoner's Dilemma engine: the payoff
// matrix, the scripted opponent strategies, the round state machine and the
// lifetime statistics fold.
// It has no terminal or storage dependencies; presentation and persistence
// live in the platform and storage packages.
package dilemma

import (
	"errors"
	"strconv"
	"strings"
)

// Move is a player's choice for one round.
type Move int

const (
	Cooperate Move = iota
	Defect
)

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case Cooperate:
		return "Cooperate"
	case Defect:
		return "Defect"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the two defined moves.
func (m Move) Valid() bool {
	return m == Cooperate || m == Defect
}

// Opposite returns the other move.
func (m Move) Opposite() Move {
	if m == Cooperate {
		return Defect
	}
	return Cooperate
}

// Letter returns the single-letter code used in compact history strings.
func (m Move) Letter() string {
	if m == Defect {
		return "D"
	}
	return "C"
}

// Difficulty selects the opponent strategy for a whole game.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Legendary
)

// Difficulties lists all tiers in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard, Legendary}

// String returns a human-readable name for the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Legendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// Description is the one-line blurb shown in the difficulty menu.
func (d Difficulty) Description() string {
	switch d {
	case Easy:
		return "Computer cooperates 70% of the time"
	case Medium:
		return "Computer plays tit-for-tat with a little noise"
	case Hard:
		return "Computer punishes frequent defectors"
	case Legendary:
		return "Computer is unpredictable and ruthless"
	default:
		return ""
	}
}

// Valid reports whether d is one of the four tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Legendary
}

// HistoryEntry records both moves of one completed round.
type HistoryEntry struct {
	Player   Move
	Opponent Move
}

// Input parsing errors.
var (
	ErrUnknownToken     = errors.New("unknown choice")
	ErrNotANumber       = errors.New("not a number")
	ErrRoundsOutOfRange = errors.New("rounds out of range")
)

// ParseMove maps the move tokens "1" and "2" to Cooperate and Defect.
func ParseMove(token string) (Move, error) {
	switch strings.TrimSpace(token) {
	case "1":
		return Cooperate, nil
	case "2":
		return Defect, nil
	}
	return Cooperate, ErrUnknownToken
}

// ParseDifficulty maps the tokens "1".."4" to the four tiers.
func ParseDifficulty(token string) (Difficulty, error) {
	switch strings.TrimSpace(token) {
	case "1":
		return Easy, nil
	case "2":
		return Medium, nil
	case "3":
		return Hard, nil
	case "4":
		return Legendary, nil
	}
	return Easy, ErrUnknownToken
}

// ParseDifficultyName accepts a tier name ("easy", "Legendary", ...) or its menu token.
func ParseDifficultyName(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return ParseDifficulty(name)
}

// ParseRounds parses a round count and checks it lies in [MinRounds, MaxRounds].
func ParseRounds(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < MinRounds || n > MaxRounds {
		return 0, ErrRoundsOutOfRange
	}
	return n, nil
}
