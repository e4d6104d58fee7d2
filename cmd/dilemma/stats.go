package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
	"github.com/vovakirdan/dilemma/internal/platform/view"
)

var flagResetStats bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	Long: `Display the lifetime record kept in the statistics file, followed by a
per-difficulty breakdown of the archived games.

Examples:
  dilemma stats
  dilemma stats --stats ./my_stats.json
  dilemma stats --reset`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagResetStats, "reset", false, "Reset the statistics file to zero")
}

func runStats(_ *cobra.Command, _ []string) {
	a := newApp()
	defer a.close()

	recorder := a.recorder()

	if flagResetStats {
		if err := recorder.Reset(); err != nil {
			a.close()
			fatal("cannot reset statistics: %v", err)
		}
		fmt.Printf("Statistics in %s reset.\n", a.stats.Path())
		return
	}

	fmt.Println(view.StatsReport(recorder.Load()))

	if a.store == nil {
		return
	}
	summary, err := a.store.DifficultySummary()
	if err != nil {
		a.logger.Warn("could not summarize archive", "error", err)
		return
	}
	if len(summary) == 0 {
		return
	}

	fmt.Println(view.Heading("BY DIFFICULTY"))
	fmt.Println()
	fmt.Printf("  %-10s  %5s  %4s  %9s  %4s  %6s  %s\n", "Difficulty", "Games", "Wins", "Avg Score", "Best", "Co-op", "Last Played")
	fmt.Printf("  %-10s  %5s  %4s  %9s  %4s  %6s  %s\n", "----------", "-----", "----", "---------", "----", "-----", "-----------")
	for _, d := range dilemma.Difficulties {
		ds, ok := summary[d.String()]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %5d  %4d  %9.1f  %4d  %5.1f%%  %s\n",
			ds.Difficulty,
			ds.GamesCount,
			ds.Wins,
			ds.AvgScore,
			ds.BestScore,
			ds.CoopPercent,
			ds.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
}
