// dilemma is an Iterated Prisoner's Dilemma game for the terminal.
//
// Usage:
//
//	dilemma                  - Full-screen menu on a terminal, line mode otherwise
//	dilemma tui              - Full-screen menu
//	dilemma play             - Line-mode game (works with pipes and redirects)
//	dilemma stats            - Show lifetime statistics
//	dilemma rules            - Show the rules and payoff matrix
//	dilemma history          - List recently archived games
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.dilemma/config.yaml, ./configs/dilemma.yaml)
//	--stats <path>   - Statistics file (default: game_stats.json)
//	--db <path>      - Game archive database (default: ~/.dilemma/history.db)
//	--seed <value>   - RNG seed for a reproducible opponent
//	--no-anim        - Disable animations and pauses
//	--debug          - Log diagnostics to stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Global flags
	flagConfigPath string
	flagStatsPath  string
	flagDBPath     string
	flagSeed       int64
	flagNoAnim     bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dilemma",
	Short: "Prisoner's Dilemma - Cooperate or defect against the computer",
	Long: `Play the Iterated Prisoner's Dilemma against a computer opponent.

Each round both players secretly cooperate or defect, then the moves are
revealed and scored. Four opponents of rising cunning are available.

Available commands:
  tui      - Full-screen menu
  play     - Line-mode game
  stats    - Show lifetime statistics
  rules    - Show the rules and payoff matrix
  history  - List recently archived games

Examples:
  dilemma
  dilemma play --difficulty hard --rounds 20
  dilemma stats --reset
  dilemma history --limit 5`,
	Run: runDefault,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagStatsPath, "stats", "", "Path to statistics file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to game archive database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagNoAnim, "no-anim", false, "Disable animations and pauses")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log diagnostics to stderr")

	// Add subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(historyCmd)
}

// runDefault picks the full-screen menu when attached to a terminal.
func runDefault(cmd *cobra.Command, args []string) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		runTUI(cmd, args)
		return
	}
	runPlay(cmd, args)
}
