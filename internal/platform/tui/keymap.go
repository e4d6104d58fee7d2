package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

// KeyMapper translates Bubble Tea key messages to menu actions and moves.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// MapKeyToIndex translates the number keys 1-9 to a zero-based list index.
// Returns -1 for any other key.
func (km *KeyMapper) MapKeyToIndex(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}

// MapKeyToMove translates a key to a move. ok is false for other keys.
func (km *KeyMapper) MapKeyToMove(msg tea.KeyMsg) (m dilemma.Move, ok bool) {
	switch msg.String() {
	case "1", "c":
		return dilemma.Cooperate, true
	case "2", "d":
		return dilemma.Defect, true
	}
	return dilemma.Cooperate, false
}

// GameKeyMap defines the key bindings shown in the game help bar.
type GameKeyMap struct {
	Cooperate key.Binding
	Defect    key.Binding
	Again     key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cooperate, k.Defect, k.Again, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cooperate, k.Defect},
		{k.Again, k.Confirm},
		{k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Cooperate: key.NewBinding(
			key.WithKeys("1", "c"),
			key.WithHelp("1/c", "cooperate"),
		),
		Defect: key.NewBinding(
			key.WithKeys("2", "d"),
			key.WithHelp("2/d", "defect"),
		),
		Again: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "play again"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// forStage enables only the bindings that apply to the given stage.
func (k GameKeyMap) forStage(s stage) GameKeyMap {
	k.Cooperate.SetEnabled(s == stagePlaying)
	k.Defect.SetEnabled(s == stagePlaying)
	k.Again.SetEnabled(s == stageSummary)
	k.Confirm.SetEnabled(s != stagePlaying)
	return k
}
