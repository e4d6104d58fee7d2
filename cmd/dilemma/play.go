package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
	"github.com/vovakirdan/dilemma/internal/platform/console"
)

var (
	flagDifficulty string
	flagRounds     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in line mode",
	Long: `Play through numbered menus, one answer per line.

Line mode reads standard input, so it also works with pipes and
redirected files. Animations are disabled when output is not a terminal.
End of input quits without recording the unfinished game.

Answers:
  Menu        - 1 play, 2 statistics, 3 rules, 4 quit
  Difficulty  - 1 easy, 2 medium, 3 hard, 4 legendary
  Rounds      - a number from 1 to 50
  Move        - 1 cooperate, 2 defect
  Play again  - y continues at the same difficulty

Examples:
  dilemma play
  dilemma play --difficulty legendary --rounds 30
  printf '1\n1\n3\n1\n1\n2\n\nn\n4\n' | dilemma play --seed 7`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start a game at once: easy, medium, hard, legendary")
	playCmd.Flags().IntVar(&flagRounds, "rounds", 0, "Start a game at once with this many rounds (1-50)")
}

func runPlay(_ *cobra.Command, _ []string) {
	var opts console.Options

	if flagDifficulty != "" {
		d, err := dilemma.ParseDifficultyName(flagDifficulty)
		if err != nil {
			fatal("unknown difficulty %q (use easy, medium, hard or legendary)", flagDifficulty)
		}
		opts.Difficulty = &d
	}
	if flagRounds != 0 {
		if flagRounds < dilemma.MinRounds || flagRounds > dilemma.MaxRounds {
			fatal("rounds must be between %d and %d, got %d", dilemma.MinRounds, dilemma.MaxRounds, flagRounds)
		}
		opts.Rounds = flagRounds
	}

	a := newApp()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	c := console.New(os.Stdin, os.Stdout, a.cfg.Animation, interactive)

	opts.Stats = a.stats
	opts.Archive = a.archive()
	opts.Rand = a.rng()
	opts.Logger = a.logger

	err := console.NewSession(c, opts).Run()
	a.close()
	if err != nil {
		fatal("%v", err)
	}
}
