package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
	"github.com/vovakirdan/dilemma/internal/platform/view"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game-id]",
	Short: "List recently archived games",
	Long: `List the most recent games from the archive, newest first.
Pass a game ID to replay that game round by round.

Examples:
  dilemma history
  dilemma history --limit 5
  dilemma history 0b6f3c1e-8f0e-4a57-9a43-2a7b7f1d6c55
  dilemma history --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of games to list (at least 1)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every archived game")
}

func runHistory(_ *cobra.Command, args []string) {
	if err := checkHistoryLimit(flagHistoryLimit); err != nil {
		fatal("%v", err)
	}

	a := newApp()
	defer a.close()

	if a.store == nil {
		a.close()
		if a.cfg.HistoryDB == "" {
			fatal("game archive is disabled (history_db is empty)")
		}
		fatal("game archive %s is not available", a.cfg.HistoryDB)
	}

	if flagHistoryClear {
		if err := a.store.ClearGames(); err != nil {
			a.close()
			fatal("%v", err)
		}
		fmt.Println("Game archive cleared.")
		return
	}

	if len(args) == 1 {
		showGame(a, args[0])
		return
	}

	games, err := a.store.RecentGames(flagHistoryLimit)
	if err != nil {
		a.close()
		fatal("retrieving games: %v", err)
	}

	fmt.Println(view.Heading("RECENT GAMES"))
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games archived yet.")
		fmt.Println()
		fmt.Println("Play 'dilemma play' to record your first game!")
		return
	}

	// Print header
	fmt.Printf("  %-36s  %-16s  %-10s  %6s  %7s  %s\n", "ID", "Date", "Difficulty", "Rounds", "Score", "Result")
	fmt.Printf("  %-36s  %-16s  %-10s  %6s  %7s  %s\n", "--", "----", "----------", "------", "-----", "------")

	for _, g := range games {
		fmt.Printf("  %-36s  %-16s  %-10s  %6d  %7s  %s\n",
			g.ID,
			g.CreatedAt.Format("2006-01-02 15:04"),
			g.Difficulty,
			g.Rounds,
			fmt.Sprintf("%d-%d", g.PlayerScore, g.OpponentScore),
			g.Outcome,
		)
	}
}

// checkHistoryLimit rejects listing sizes below one.
func checkHistoryLimit(n int) error {
	if n < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", n)
	}
	return nil
}

// showGame prints one archived game round by round.
func showGame(a *app, id string) {
	rec, err := a.store.GameByID(id)
	if err != nil {
		a.close()
		fatal("%v", err)
	}
	if rec == nil {
		a.close()
		fatal("no archived game with ID %q", id)
	}

	fmt.Printf("%s  %s  %s\n\n",
		view.Heading(rec.Difficulty),
		rec.CreatedAt.Format("2006-01-02 15:04"),
		view.Dim(rec.ID))

	player, opponent := 0, 0
	for i, h := range rec.History() {
		pp, op := dilemma.Payoff(h.Player, h.Opponent)
		player += pp
		opponent += op
		fmt.Printf("  %3d.  You %s  Computer %s   %d-%d\n",
			i+1, view.MoveLabel(h.Player), view.MoveLabel(h.Opponent), player, opponent)
	}

	fmt.Println()
	fmt.Printf("  Final: %d-%d (%s)  %s\n", rec.PlayerScore, rec.OpponentScore, rec.Outcome, view.Differential(rec.Differential()))
}
