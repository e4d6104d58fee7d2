package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dilemma/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen menu",
	Long: `Start the game in full-screen mode.

Use arrow keys or j/k to navigate, Enter or a number key to select.
After a game ends you can play again at the same difficulty or
return to the menu.

Controls:
  Up/Down/j/k  - Navigate menus
  Enter/1-4    - Select
  1/c          - Cooperate
  2/d          - Defect
  y            - Play again (after a game)
  Esc          - Back
  Q/Ctrl+C     - Quit

Examples:
  dilemma tui
  dilemma tui --no-anim
  dilemma tui --seed 42`,
	Run: runTUI,
}

func runTUI(_ *cobra.Command, _ []string) {
	a := newApp()
	defer a.close()

	cfg := a.runtimeConfig()
	rng := a.rng()
	recorder := a.recorder()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		switch menuResult.Choice {
		case tui.ChoicePlay:
			gameResult, err := tui.Run(cfg, tui.Options{
				Recorder: recorder,
				Rand:     rng,
				Logger:   a.logger,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			cfg = gameResult.Config
			a.logger.Debug("left game", "games_played", gameResult.GamesPlayed)
			if gameResult.Quit {
				return
			}

		case tui.ChoiceStats:
			goBack, err := tui.RunScoreboard(recorder.Load(), a.lister(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return // User quit from scoreboard
			}

		case tui.ChoiceRules:
			goBack, err := tui.RunRules(cfg.ScreenW)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}
		}
	}
}
