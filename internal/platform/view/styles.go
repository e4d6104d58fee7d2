// Package view renders game state to styled strings.
// Both the line console and the full-screen UI print these blocks, so the two
// presentations stay consistent.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

// Shared styles, ANSI 16-color palette.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	evenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(0, 2).
			Width(ruleWidth - 2).
			Align(lipgloss.Center)

	resolutionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(0, 2)
)

// Prompt renders an input prompt label followed by ": ".
func Prompt(label string) string {
	return promptStyle.Render(label) + ": "
}

// Error renders a validation message.
func Error(msg string) string {
	return errorStyle.Render(msg)
}

// Info renders secondary text.
func Info(msg string) string {
	return infoStyle.Render(msg)
}

// Dim renders de-emphasized text.
func Dim(msg string) string {
	return dimStyle.Render(msg)
}

// Heading renders a section heading.
func Heading(msg string) string {
	return headingStyle.Render(msg)
}

// Good renders positive text.
func Good(msg string) string {
	return goodStyle.Bold(true).Render(msg)
}

// scoreStyle colors a score green when ahead, red when behind, yellow when level.
func scoreStyle(mine, theirs int) lipgloss.Style {
	switch {
	case mine > theirs:
		return goodStyle
	case mine < theirs:
		return badStyle
	default:
		return evenStyle
	}
}

// MoveLabel renders a move as a colored tag.
func MoveLabel(m dilemma.Move) string {
	if m == dilemma.Defect {
		return badStyle.Render("[D] DEFECT")
	}
	return goodStyle.Render("[C] COOPERATE")
}

// DifficultyLabel renders a difficulty name in its menu color.
func DifficultyLabel(d dilemma.Difficulty) string {
	var style lipgloss.Style
	switch d {
	case dilemma.Easy:
		style = goodStyle
	case dilemma.Medium:
		style = evenStyle
	case dilemma.Hard:
		style = badStyle
	default:
		style = accentStyle
	}
	return style.Bold(true).Render(d.String())
}
