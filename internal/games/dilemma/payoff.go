package dilemma

// Classical payoff values. Sucker < Punishment < Reward < Temptation.
const (
	Sucker     = 0
	Punishment = 1
	Reward     = 3
	Temptation = 5
)

// Payoff returns the points earned by the player and the opponent for one round.
func Payoff(player, opponent Move) (playerPts, opponentPts int) {
	switch {
	case player == Cooperate && opponent == Cooperate:
		return Reward, Reward
	case player == Cooperate && opponent == Defect:
		return Sucker, Temptation
	case player == Defect && opponent == Cooperate:
		return Temptation, Sucker
	default:
		return Punishment, Punishment
	}
}
