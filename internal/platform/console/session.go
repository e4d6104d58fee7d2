package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dilemma/internal/core"
	"github.com/vovakirdan/dilemma/internal/games/dilemma"
	"github.com/vovakirdan/dilemma/internal/platform/view"
)

// Options configures a Session.
type Options struct {
	Stats   core.StatsStore
	Archive core.Archive // optional
	Rand    dilemma.RandSource
	Logger  *log.Logger

	// Difficulty and Rounds, when set, start a game right away and skip the
	// matching prompt for that first game.
	Difficulty *dilemma.Difficulty
	Rounds     int
}

// Session drives menus and games over a Console.
type Session struct {
	c        *Console
	recorder *core.Recorder
	rng      dilemma.RandSource
	logger   *log.Logger

	difficulty *dilemma.Difficulty
	rounds     int
}

// NewSession creates a session.
func NewSession(c *Console, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		c:          c,
		recorder:   core.NewRecorder(opts.Stats, opts.Archive, logger),
		rng:        opts.Rand,
		logger:     logger,
		difficulty: opts.Difficulty,
		rounds:     opts.Rounds,
	}
}

// Run shows the main menu until the player quits or input ends.
// End of input is a normal way to leave and is not reported as an error.
func (s *Session) Run() error {
	err := s.run()
	if errors.Is(err, io.EOF) {
		s.logger.Debug("input closed, leaving session")
		s.c.Println()
		return nil
	}
	return err
}

func (s *Session) run() error {
	if s.difficulty != nil || s.rounds > 0 {
		if err := s.Play(); err != nil {
			return err
		}
	}

	for {
		s.c.ClearScreen()
		s.c.Println(view.Title())
		s.c.Println(view.MainMenu())

		choice, err := s.c.ReadMenuChoice()
		if err != nil {
			return err
		}

		switch choice {
		case MenuPlay:
			err = s.Play()
		case MenuStats:
			err = s.ShowStats()
		case MenuRules:
			err = s.ShowRules()
		case MenuQuit:
			s.c.Println()
			s.c.Println(view.Good("Thanks for playing! Goodbye!"))
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Play runs games at one difficulty until the player declines to continue.
func (s *Session) Play() error {
	stats := s.recorder.Load()

	s.c.ClearScreen()
	s.c.Println(view.Title())
	s.c.Println(view.PayoffMatrix())

	d, err := s.chooseDifficulty()
	if err != nil {
		return err
	}
	s.c.Println(view.Good("Excellent choice! Let's play!"))
	s.c.Println()

	for {
		rounds, err := s.chooseRounds()
		if err != nil {
			return err
		}

		g, err := dilemma.NewGame(d, rounds, s.rng)
		if err != nil {
			return fmt.Errorf("console: cannot start game: %w", err)
		}
		s.logger.Debug("game started", "difficulty", d, "rounds", rounds)

		if err := s.playRounds(g); err != nil {
			return err
		}
		stats = s.recorder.Record(stats, g)

		s.c.ClearScreen()
		s.c.Println(view.GameSummary(g.Snapshot(), stats))
		if err := s.c.WaitEnter(); err != nil {
			return err
		}

		again, err := s.c.ReadPlayAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) chooseDifficulty() (dilemma.Difficulty, error) {
	if s.difficulty != nil {
		d := *s.difficulty
		s.difficulty = nil
		return d, nil
	}
	s.c.Println(view.DifficultyMenu())
	return s.c.ReadDifficulty()
}

func (s *Session) chooseRounds() (int, error) {
	if s.rounds > 0 {
		n := s.rounds
		s.rounds = 0
		return n, nil
	}
	return s.c.ReadRounds()
}

func (s *Session) playRounds(g *dilemma.Game) error {
	anim := s.c.Animation()
	for !g.Finished() {
		s.c.ClearScreen()
		s.c.Println(view.Title())
		s.c.Println(view.GameState(g.Snapshot()))
		s.c.Println(view.MoveChoices())

		m, err := s.c.ReadMove()
		if err != nil {
			return err
		}
		s.c.Animate(fmt.Sprintf("You chose to %s...", strings.ToLower(m.String())))
		s.c.Pause(anim.RevealDelay())

		res, err := g.PlayRound(m)
		if err != nil {
			return fmt.Errorf("console: cannot play round: %w", err)
		}
		s.logger.Debug("round played",
			"round", res.Round,
			"player", res.PlayerMove,
			"opponent", res.OpponentMove,
		)

		s.c.Println()
		s.c.Println(view.RoundResolution(res))
		s.c.Pause(anim.ResultPause())
	}
	return nil
}

// ShowStats prints the lifetime statistics.
func (s *Session) ShowStats() error {
	stats := s.recorder.Load()
	s.c.ClearScreen()
	s.c.Println(view.Title())
	s.c.Println(view.StatsReport(stats))
	return s.c.WaitEnter()
}

// ShowRules prints the rules and the payoff matrix.
func (s *Session) ShowRules() error {
	s.c.ClearScreen()
	s.c.Println(view.Title())
	s.c.Println(view.Rules())
	return s.c.WaitEnter()
}
