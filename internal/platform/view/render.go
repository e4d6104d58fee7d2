package view

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

const (
	ruleWidth = 60
	barWidth  = 30
)

// Rule renders a full-width separator line.
func Rule() string {
	return dimStyle.Render(strings.Repeat("═", ruleWidth))
}

// Title renders the game banner.
func Title() string {
	return bannerStyle.Render(titleStyle.Render("PRISONER'S DILEMMA") + "\n" +
		dimStyle.Render("Cooperate or defect. Choose wisely."))
}

// MainMenu renders the numbered main menu.
func MainMenu() string {
	var b strings.Builder
	b.WriteString(Heading("MAIN MENU") + "\n\n")
	b.WriteString("  1. Start New Game\n")
	b.WriteString("  2. View Statistics\n")
	b.WriteString("  3. Rules & Tips\n")
	b.WriteString("  4. Quit\n")
	return b.String()
}

// DifficultyMenu renders the numbered difficulty list with descriptions.
func DifficultyMenu() string {
	var b strings.Builder
	b.WriteString(Heading("SELECT DIFFICULTY") + "\n\n")
	for i, d := range dilemma.Difficulties {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, DifficultyLabel(d))
		fmt.Fprintf(&b, "     %s\n", dimStyle.Render(d.Description()))
	}
	return b.String()
}

// PayoffMatrix renders the four payoff cells.
func PayoffMatrix() string {
	cell := func(p, o dilemma.Move) string {
		pp, op := dilemma.Payoff(p, o)
		return fmt.Sprintf("You: %d, Computer: %d", pp, op)
	}

	var b strings.Builder
	b.WriteString(Heading("PAYOFF MATRIX") + "\n\n")
	fmt.Fprintf(&b, "  %-28s %s\n", "Both cooperate", goodStyle.Render(cell(dilemma.Cooperate, dilemma.Cooperate)))
	fmt.Fprintf(&b, "  %-28s %s\n", "You cooperate, they defect", badStyle.Render(cell(dilemma.Cooperate, dilemma.Defect)))
	fmt.Fprintf(&b, "  %-28s %s\n", "You defect, they cooperate", goodStyle.Render(cell(dilemma.Defect, dilemma.Cooperate)))
	fmt.Fprintf(&b, "  %-28s %s\n", "Both defect", evenStyle.Render(cell(dilemma.Defect, dilemma.Defect)))
	return b.String()
}

// Rules renders the rules and strategy tips.
func Rules() string {
	var b strings.Builder
	b.WriteString(Heading("RULES") + "\n\n")
	b.WriteString("  Each round you and the computer secretly choose to\n")
	b.WriteString("  cooperate or defect. Both moves are revealed together\n")
	b.WriteString("  and points are awarded from the payoff matrix.\n")
	b.WriteString("  The player with the most points after the last round wins.\n\n")
	b.WriteString(PayoffMatrix())
	b.WriteString("\n" + Heading("TIPS") + "\n\n")
	b.WriteString("  • Mutual cooperation pays more over time than mutual defection\n")
	b.WriteString("  • Some opponents remember what you did last round\n")
	b.WriteString("  • Defecting too often can make an opponent turn hostile\n")
	b.WriteString("  • The Legendary opponent can surprise you at any time\n")
	return b.String()
}

// ProgressBar renders a fixed-width text bar for round progress.
func ProgressBar(round, total int) string {
	filled := 0
	if total > 0 {
		filled = min(barWidth, round*barWidth/total)
	}
	return "[" + goodStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", barWidth-filled)) + "]"
}

// Scoreboard renders both scores colored by who is ahead.
func Scoreboard(snap dilemma.Snapshot) string {
	you := scoreStyle(snap.PlayerScore, snap.OpponentScore).Bold(true).
		Render(fmt.Sprintf("%d", snap.PlayerScore))
	them := scoreStyle(snap.OpponentScore, snap.PlayerScore).Bold(true).
		Render(fmt.Sprintf("%d", snap.OpponentScore))
	return fmt.Sprintf("You: %s  │  Computer: %s", you, them)
}

// GameState renders the round header, progress bar and scoreboard.
// The round shown is the one about to be played.
func GameState(snap dilemma.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n",
		Heading(fmt.Sprintf("Round %d of %d", min(snap.Round+1, snap.TotalRounds), snap.TotalRounds)),
		DifficultyLabel(snap.Difficulty))
	fmt.Fprintf(&b, "%s %d/%d\n", ProgressBar(snap.Round, snap.TotalRounds), snap.Round, snap.TotalRounds)
	b.WriteString(Scoreboard(snap) + "\n")
	return b.String()
}

// MoveChoices renders the move prompt options.
func MoveChoices() string {
	return fmt.Sprintf("  1. %s\n  2. %s\n", MoveLabel(dilemma.Cooperate), MoveLabel(dilemma.Defect))
}

// RoundBanner describes what the round's move pair means.
func RoundBanner(res dilemma.RoundResult) string {
	switch {
	case res.PlayerMove == dilemma.Cooperate && res.OpponentMove == dilemma.Cooperate:
		return goodStyle.Bold(true).Render("MUTUAL COOPERATION")
	case res.PlayerMove == dilemma.Defect && res.OpponentMove == dilemma.Defect:
		return evenStyle.Bold(true).Render("MUTUAL DEFECTION")
	case res.PlayerMove == dilemma.Defect:
		return goodStyle.Bold(true).Render("YOU EXPLOITED THE COMPUTER")
	default:
		return badStyle.Bold(true).Render("YOU WERE EXPLOITED")
	}
}

// RoundResolution renders the boxed result of one round.
func RoundResolution(res dilemma.RoundResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Heading(fmt.Sprintf("ROUND %d RESULT", res.Round)))
	fmt.Fprintf(&b, "You:      %s  %s\n", MoveLabel(res.PlayerMove), points(res.PlayerPoints))
	fmt.Fprintf(&b, "Computer: %s  %s\n\n", MoveLabel(res.OpponentMove), points(res.OpponentPoints))
	b.WriteString(RoundBanner(res))
	return resolutionStyle.Render(b.String())
}

func points(n int) string {
	label := fmt.Sprintf("+%d pts", n)
	switch n {
	case dilemma.Temptation, dilemma.Reward:
		return goodStyle.Render(label)
	case dilemma.Sucker:
		return badStyle.Render(label)
	default:
		return evenStyle.Render(label)
	}
}

// OutcomeLine renders the final verdict of a game.
func OutcomeLine(o dilemma.Outcome) string {
	switch o {
	case dilemma.OutcomeWin:
		return goodStyle.Bold(true).Render("YOU WIN!")
	case dilemma.OutcomeLoss:
		return badStyle.Bold(true).Render("YOU LOSE")
	default:
		return evenStyle.Bold(true).Render("IT'S A TIE")
	}
}

// Differential renders a signed score difference.
func Differential(d int) string {
	s := fmt.Sprintf("%+d", d)
	switch {
	case d > 0:
		return goodStyle.Render(s)
	case d < 0:
		return badStyle.Render(s)
	default:
		return evenStyle.Render(s)
	}
}

// GameSummary renders the end-of-game report with updated lifetime stats.
func GameSummary(snap dilemma.Snapshot, stats dilemma.Statistics) string {
	var b strings.Builder
	b.WriteString(Heading("GAME OVER") + "\n\n")
	fmt.Fprintf(&b, "  Final score: %s\n", Scoreboard(snap))
	fmt.Fprintf(&b, "  Difference:  %s\n", Differential(snap.PlayerScore-snap.OpponentScore))

	coop := 0
	for _, h := range snap.History {
		if h.Player == dilemma.Cooperate {
			coop++
		}
	}
	fmt.Fprintf(&b, "  You cooperated in %d of %d rounds\n", coop, len(snap.History))

	fmt.Fprintf(&b, "  Rounds:      %d\n", snap.TotalRounds)
	fmt.Fprintf(&b, "  Difficulty:  %s\n\n", DifficultyLabel(snap.Difficulty))

	b.WriteString("  " + OutcomeLine(snap.Outcome()) + "\n\n")
	fmt.Fprintf(&b, "  Lifetime: %d played, %.1f%% won\n", stats.GamesPlayed, stats.WinRate())
	fmt.Fprintf(&b, "  Record:   %dW / %dL / %dT\n", stats.GamesWon, stats.GamesLost, stats.GamesTied)
	return b.String()
}

// StatsReport renders the lifetime statistics screen.
func StatsReport(stats dilemma.Statistics) string {
	var b strings.Builder
	b.WriteString(Heading("STATISTICS") + "\n\n")
	if stats.GamesPlayed == 0 {
		b.WriteString(dimStyle.Render("  No games played yet") + "\n")
		return b.String()
	}

	row := func(label, value string) {
		fmt.Fprintf(&b, "  %-22s %s\n", label+":", value)
	}
	row("Games Played", fmt.Sprintf("%d", stats.GamesPlayed))
	row("Games Won", goodStyle.Render(fmt.Sprintf("%d", stats.GamesWon)))
	row("Games Lost", badStyle.Render(fmt.Sprintf("%d", stats.GamesLost)))
	row("Games Tied", evenStyle.Render(fmt.Sprintf("%d", stats.GamesTied)))
	row("Win Rate", fmt.Sprintf("%.1f%%", stats.WinRate()))
	row("Total Points", fmt.Sprintf("%d", stats.TotalPoints))
	row("Best Differential", Differential(stats.BestScoreDifferential))
	row("Worst Differential", Differential(stats.WorstScoreDifferential))
	return b.String()
}
