package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dilemma/internal/platform/view"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the rules and payoff matrix",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(view.Title())
		fmt.Println()
		fmt.Println(view.Rules())
		fmt.Println(view.DifficultyMenu())
	},
}
