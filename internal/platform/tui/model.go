package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dilemma/internal/core"
	"github.com/vovakirdan/dilemma/internal/games/dilemma"
	"github.com/vovakirdan/dilemma/internal/platform/view"
)

// stage is the step of the game flow currently on screen.
type stage int

const (
	stageDifficulty stage = iota
	stageRounds
	stagePlaying
	stageSummary
)

const progressWidth = 40

// Model is the Bubble Tea model for playing games at one difficulty.
type Model struct {
	config    core.RuntimeConfig
	recorder  *core.Recorder
	rng       dilemma.RandSource
	logger    *log.Logger
	keyMapper *KeyMapper
	keys      GameKeyMap
	help      help.Model
	progress  progress.Model
	input     textinput.Model

	stage      stage
	cursor     int
	difficulty dilemma.Difficulty
	game       *dilemma.Game
	last       *dilemma.RoundResult
	revealing  bool
	stats      dilemma.Statistics
	inputErr   string
	played     int

	quitting bool
	done     bool
}

// Options configures the game model.
type Options struct {
	Recorder *core.Recorder
	Rand     dilemma.RandSource
	Logger   *log.Logger

	// Difficulty, when set, skips the difficulty picker.
	Difficulty *dilemma.Difficulty
}

// NewModel creates a new Bubble Tea model for a game session.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	ti := textinput.New()
	ti.Prompt = view.Prompt(fmt.Sprintf("Number of rounds (%d-%d)", dilemma.MinRounds, dilemma.MaxRounds))
	ti.CharLimit = 3
	ti.Width = 4

	m := Model{
		config:    cfg,
		recorder:  opts.Recorder,
		rng:       opts.Rand,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		keys:      DefaultGameKeyMap(),
		help:      h,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		input:     ti,
		stats:     opts.Recorder.Load(),
	}

	if opts.Difficulty != nil {
		m.difficulty = *opts.Difficulty
		m = m.askRounds()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.stage == stageRounds {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case revealMsg:
		return m.handleReveal()
	}

	if m.stage == stageRounds {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches keyboard input to the current stage.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageDifficulty:
		return m.handleDifficultyKey(msg)
	case stageRounds:
		return m.handleRoundsKey(msg)
	case stagePlaying:
		return m.handlePlayingKey(msg)
	default:
		return m.handleSummaryKey(msg)
	}
}

func (m Model) handleDifficultyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if i := m.keyMapper.MapKeyToIndex(msg); i >= 0 && i < len(dilemma.Difficulties) {
		m.cursor = i
		return m.chooseDifficulty()
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.done = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(dilemma.Difficulties)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.chooseDifficulty()
	}
	return m, nil
}

func (m Model) chooseDifficulty() (tea.Model, tea.Cmd) {
	m.difficulty = dilemma.Difficulties[m.cursor]
	m = m.askRounds()
	return m, textinput.Blink
}

// askRounds shows the rounds prompt pre-filled with the configured default.
func (m Model) askRounds() Model {
	m.stage = stageRounds
	m.inputErr = ""
	m.input.SetValue(strconv.Itoa(m.config.DefaultRounds))
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m Model) handleRoundsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.stage = stageDifficulty
		return m, nil

	case "enter":
		rounds, err := dilemma.ParseRounds(m.input.Value())
		switch {
		case errors.Is(err, dilemma.ErrNotANumber):
			m.inputErr = "Please enter a valid number."
			return m, nil
		case err != nil:
			m.inputErr = fmt.Sprintf("Please enter a number between %d and %d.", dilemma.MinRounds, dilemma.MaxRounds)
			return m, nil
		}
		return m.startGame(rounds)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startGame(rounds int) (tea.Model, tea.Cmd) {
	g, err := dilemma.NewGame(m.difficulty, rounds, m.rng)
	if err != nil {
		m.inputErr = err.Error()
		return m, nil
	}

	m.logger.Debug("game started", "difficulty", m.difficulty, "rounds", rounds)
	m.input.Blur()
	m.game = g
	m.last = nil
	m.revealing = false
	m.inputErr = ""
	m.stage = stagePlaying
	return m, nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		// Abandoned games are not recorded.
		if !m.game.Finished() {
			m.logger.Debug("game abandoned", "round", m.game.Round())
		}
		m.done = true
		return m, tea.Quit
	}
	if m.revealing {
		return m, nil
	}

	move, ok := m.keyMapper.MapKeyToMove(msg)
	if !ok {
		return m, nil
	}

	res, err := m.game.PlayRound(move)
	if err != nil {
		m.logger.Debug("round rejected", "error", err)
		return m, nil
	}
	m.logger.Debug("round played",
		"round", res.Round,
		"player", res.PlayerMove,
		"opponent", res.OpponentMove,
	)
	m.last = &res

	if m.game.Finished() {
		m.stats = m.recorder.Record(m.stats, m.game)
		m.played++
	}

	if delay := m.config.Animation.RevealDelay(); delay > 0 {
		m.revealing = true
		return m, revealCmd(delay)
	}
	return m.afterReveal(), nil
}

func (m Model) handleReveal() (tea.Model, tea.Cmd) {
	if !m.revealing {
		return m, nil
	}
	m.revealing = false
	return m.afterReveal(), nil
}

func (m Model) afterReveal() Model {
	if m.game != nil && m.game.Finished() {
		m.stage = stageSummary
	}
	return m
}

func (m Model) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m = m.askRounds()
		return m, textinput.Blink
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "n", "esc", "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current stage.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	width := m.config.ScreenW

	b.WriteString("\n")
	b.WriteString(centerBlock(view.Title(), width))
	b.WriteString("\n\n")

	var body string
	switch m.stage {
	case stageDifficulty:
		body = m.viewDifficulty()
	case stageRounds:
		body = m.viewRounds()
	case stagePlaying:
		body = m.viewPlaying()
	default:
		body = m.viewSummary()
	}
	b.WriteString(centerBlock(body, width))

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.forStage(m.stage))))
	return b.String()
}

func (m Model) viewDifficulty() string {
	var b strings.Builder
	b.WriteString(view.Heading("SELECT DIFFICULTY") + "\n\n")
	for i, d := range dilemma.Difficulties {
		b.WriteString(listItem(fmt.Sprintf("%d. %s", i+1, view.DifficultyLabel(d)), i == m.cursor))
		b.WriteString("\n")
		b.WriteString("     " + view.Dim(d.Description()) + "\n")
	}
	return b.String()
}

func (m Model) viewRounds() string {
	var b strings.Builder
	b.WriteString(view.PayoffMatrix())
	b.WriteString("\n")
	b.WriteString("Difficulty: " + view.DifficultyLabel(m.difficulty) + "\n\n")
	b.WriteString(m.input.View())
	if m.inputErr != "" {
		b.WriteString("\n" + view.Error(m.inputErr))
	}
	return b.String()
}

func (m Model) viewPlaying() string {
	snap := m.game.Snapshot()

	var b strings.Builder
	round := snap.Round + 1
	if m.revealing {
		round = snap.Round
	}
	fmt.Fprintf(&b, "%s  %s\n",
		view.Heading(fmt.Sprintf("Round %d of %d", min(round, snap.TotalRounds), snap.TotalRounds)),
		view.DifficultyLabel(snap.Difficulty))
	fmt.Fprintf(&b, "%s %d/%d\n", m.progress.ViewAs(snap.Progress()), snap.Round, snap.TotalRounds)
	b.WriteString(view.Scoreboard(snap) + "\n\n")

	switch {
	case m.revealing && m.last != nil:
		fmt.Fprintf(&b, "You chose %s\n", view.MoveLabel(m.last.PlayerMove))
		b.WriteString(view.Dim("The computer is deciding...") + "\n")
	case m.last != nil:
		b.WriteString(view.RoundResolution(*m.last) + "\n\n")
		b.WriteString(view.MoveChoices())
	default:
		b.WriteString(view.MoveChoices())
	}
	return b.String()
}

func (m Model) viewSummary() string {
	var b strings.Builder
	if m.last != nil {
		b.WriteString(view.RoundResolution(*m.last) + "\n\n")
	}
	b.WriteString(view.GameSummary(m.game.Snapshot(), m.stats))
	b.WriteString("\n" + view.Prompt("Play again? (y/n)"))
	return b.String()
}

// IsQuitting returns true if user wants to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// GamesPlayed returns how many games were completed in this model.
func (m Model) GamesPlayed() int {
	return m.played
}

// GameResult holds the result of running a game session.
type GameResult struct {
	Config      core.RuntimeConfig
	GamesPlayed int
	Quit        bool
}

// Run plays games until the player returns to the menu or quits.
func Run(cfg core.RuntimeConfig, opts Options) (GameResult, error) {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return GameResult{Config: cfg, Quit: true}, nil
	}

	return GameResult{
		Config:      m.Config(),
		GamesPlayed: m.GamesPlayed(),
		Quit:        m.IsQuitting(),
	}, nil
}
