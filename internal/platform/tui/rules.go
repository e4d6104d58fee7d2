package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dilemma/internal/platform/view"
)

// RulesModel shows the rules, the payoff matrix and strategy tips.
type RulesModel struct {
	width     int
	keyMapper *KeyMapper
	quitting  bool
	goingBack bool
}

// NewRulesModel creates a new rules screen.
func NewRulesModel(width int) RulesModel {
	return RulesModel{width: width, keyMapper: NewKeyMapper()}
}

// Init initializes the rules model.
func (m RulesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rules screen.
func (m RulesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the rules.
func (m RulesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerBlock(view.Title(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(panelStyle.Render(strings.TrimRight(view.Rules(), "\n")), m.width))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(centerText("Enter/Esc: Back  |  Q: Quit", m.width)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RulesModel) IsGoingBack() bool {
	return m.goingBack
}

// RunRules runs the rules screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRules(width int) (goBack bool, err error) {
	p := tea.NewProgram(NewRulesModel(width), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RulesModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
