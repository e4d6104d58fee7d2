package dilemma

// RandSource supplies uniform random numbers in [0, 1).
// *math/rand.Rand satisfies it; tests inject scripted sources.
type RandSource interface {
	Float64() float64
}

// Strategy thresholds and probabilities per tier.
const (
	easyCooperateProb = 0.7

	mediumMirrorProb = 0.85

	hardOpeningCooperateProb = 0.6
	hardPunishRate           = 0.4
	hardCooperateProb        = 0.6

	legendaryOpeningCooperateProb = 0.5
	legendaryPunishRate           = 0.3
	legendaryDefectProb           = 0.5
	legendaryFlipProb             = 0.15
)

// NextMove picks the opponent's move for the coming round.
// history is the record of all completed rounds and is only read.
func NextMove(history []HistoryEntry, d Difficulty, rng RandSource) Move {
	switch d {
	case Medium:
		return mediumMove(history, rng)
	case Hard:
		return hardMove(history, rng)
	case Legendary:
		return legendaryMove(history, rng)
	default:
		return cooperateWith(rng, easyCooperateProb)
	}
}

// mediumMove is tit-for-tat with a 15% chance of defecting anyway.
func mediumMove(history []HistoryEntry, rng RandSource) Move {
	if len(history) == 0 {
		return Cooperate
	}
	if chance(rng, mediumMirrorProb) {
		return lastPlayerMove(history)
	}
	return Defect
}

func hardMove(history []HistoryEntry, rng RandSource) Move {
	if len(history) == 0 {
		return cooperateWith(rng, hardOpeningCooperateProb)
	}
	if PlayerDefectRate(history) > hardPunishRate {
		return Defect
	}
	return cooperateWith(rng, hardCooperateProb)
}

func legendaryMove(history []HistoryEntry, rng RandSource) Move {
	if len(history) == 0 {
		return cooperateWith(rng, legendaryOpeningCooperateProb)
	}

	var move Move
	switch {
	case PlayerDefectRate(history) > legendaryPunishRate:
		move = Defect
	case lastPlayerMove(history) == Defect:
		move = Defect
	case chance(rng, legendaryDefectProb):
		move = Defect
	default:
		move = Cooperate
	}

	// The flip is drawn every round, whichever branch chose the move.
	if chance(rng, legendaryFlipProb) {
		move = move.Opposite()
	}
	return move
}

// PlayerDefectRate returns the fraction of rounds in which the player defected.
// Returns 0 for an empty history.
func PlayerDefectRate(history []HistoryEntry) float64 {
	if len(history) == 0 {
		return 0
	}
	defects := 0
	for _, h := range history {
		if h.Player == Defect {
			defects++
		}
	}
	return float64(defects) / float64(len(history))
}

func lastPlayerMove(history []HistoryEntry) Move {
	return history[len(history)-1].Player
}

func cooperateWith(rng RandSource, p float64) Move {
	if chance(rng, p) {
		return Cooperate
	}
	return Defect
}

func chance(rng RandSource, p float64) bool {
	return rng.Float64() < p
}
