package dilemma

import "errors"

// ErrGameNotFinished is returned when folding a game that still has rounds to play.
var ErrGameNotFinished = errors.New("dilemma: game not finished")

// Statistics holds lifetime counters across all completed games.
type Statistics struct {
	GamesPlayed            int `json:"games_played"`
	GamesWon               int `json:"games_won"`
	GamesLost              int `json:"games_lost"`
	GamesTied              int `json:"games_tied"`
	TotalPoints            int `json:"total_points"`
	BestScoreDifferential  int `json:"best_score_differential"`
	WorstScoreDifferential int `json:"worst_score_differential"`
}

// WinRate returns the percentage of games won, or 0 when nothing was played.
func (s Statistics) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed) * 100
}

// RecordGame folds a finished game into the statistics and returns the result.
// An unfinished game leaves s untouched.
func RecordGame(s Statistics, g *Game) (Statistics, error) {
	if g == nil || !g.Finished() {
		return s, ErrGameNotFinished
	}
	return recordScores(s, g.PlayerScore(), g.OpponentScore()), nil
}

func recordScores(s Statistics, player, opponent int) Statistics {
	s.GamesPlayed++
	s.TotalPoints += player

	switch compare(player, opponent) {
	case OutcomeWin:
		s.GamesWon++
	case OutcomeLoss:
		s.GamesLost++
	default:
		s.GamesTied++
	}

	diff := player - opponent
	s.BestScoreDifferential = max(s.BestScoreDifferential, diff)
	s.WorstScoreDifferential = min(s.WorstScoreDifferential, diff)
	return s
}
