// Package console runs the game as a line-oriented terminal session.
// Input is read one line at a time, so it works on pipes and dumb terminals
// where the full-screen UI cannot start.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vovakirdan/dilemma/internal/config"
	"github.com/vovakirdan/dilemma/internal/games/dilemma"
	"github.com/vovakirdan/dilemma/internal/platform/view"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota + 1
	MenuStats
	MenuRules
	MenuQuit
)

// Console reads validated answers from a line reader and writes styled output.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	anim        config.AnimationConfig
	interactive bool
	sleep       func(time.Duration)
}

// New creates a console. When interactive is false the screen is never
// cleared and animation is skipped regardless of anim.
func New(in io.Reader, out io.Writer, anim config.AnimationConfig, interactive bool) *Console {
	if !interactive {
		anim.Enabled = false
	}
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		anim:        anim,
		interactive: interactive,
		sleep:       time.Sleep,
	}
}

// Println writes a line of output.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Print writes output without a trailing newline.
func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

// ClearScreen clears the terminal on interactive sessions.
func (c *Console) ClearScreen() {
	if c.interactive {
		fmt.Fprint(c.out, "\033[2J\033[H")
	}
}

// Animate prints text one rune at a time followed by a newline.
func (c *Console) Animate(text string) {
	delay := c.anim.CharDelay()
	if delay == 0 {
		fmt.Fprintln(c.out, text)
		return
	}
	for _, r := range text {
		fmt.Fprint(c.out, string(r))
		c.sleep(delay)
	}
	fmt.Fprintln(c.out)
}

// Animation returns the effective animation settings.
func (c *Console) Animation() config.AnimationConfig {
	return c.anim
}

// Pause waits for d when animation is on.
func (c *Console) Pause(d time.Duration) {
	if c.anim.Enabled && d > 0 {
		c.sleep(d)
	}
}

// readLine returns the next input line without its line terminator.
// A final line without a newline is still returned; io.EOF is reported only
// when no input remains.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) ask(label string) (string, error) {
	fmt.Fprint(c.out, view.Prompt(label))
	return c.readLine()
}

// ReadMenuChoice prompts until one of the menu tokens 1-4 is entered.
func (c *Console) ReadMenuChoice() (MenuChoice, error) {
	for {
		line, err := c.ask("Select an option (1-4)")
		if err != nil {
			return 0, err
		}
		switch strings.TrimSpace(line) {
		case "1":
			return MenuPlay, nil
		case "2":
			return MenuStats, nil
		case "3":
			return MenuRules, nil
		case "4":
			return MenuQuit, nil
		}
		c.Println(view.Error("Invalid choice. Please enter 1, 2, 3 or 4."))
	}
}

// ReadDifficulty prompts until a difficulty token 1-4 is entered.
func (c *Console) ReadDifficulty() (dilemma.Difficulty, error) {
	for {
		line, err := c.ask("Choose difficulty (1-4)")
		if err != nil {
			return dilemma.Easy, err
		}
		d, err := dilemma.ParseDifficulty(line)
		if err == nil {
			return d, nil
		}
		c.Println(view.Error("Invalid choice. Please enter 1, 2, 3 or 4."))
	}
}

// ReadRounds prompts until a round count in range is entered.
func (c *Console) ReadRounds() (int, error) {
	label := fmt.Sprintf("Number of rounds (%d-%d)", dilemma.MinRounds, dilemma.MaxRounds)
	for {
		line, err := c.ask(label)
		if err != nil {
			return 0, err
		}
		n, err := dilemma.ParseRounds(line)
		switch {
		case err == nil:
			return n, nil
		case errors.Is(err, dilemma.ErrNotANumber):
			c.Println(view.Error("Please enter a valid number."))
		default:
			c.Println(view.Error(fmt.Sprintf("Please enter a number between %d and %d.",
				dilemma.MinRounds, dilemma.MaxRounds)))
		}
	}
}

// ReadMove prompts until a move token 1 or 2 is entered.
func (c *Console) ReadMove() (dilemma.Move, error) {
	for {
		line, err := c.ask("Your move (1-2)")
		if err != nil {
			return dilemma.Cooperate, err
		}
		m, err := dilemma.ParseMove(line)
		if err == nil {
			return m, nil
		}
		c.Println(view.Error("Invalid move. Enter 1 to cooperate or 2 to defect."))
	}
}

// ReadPlayAgain asks whether to start another game. Only "y" (any case) means yes.
func (c *Console) ReadPlayAgain() (bool, error) {
	line, err := c.ask("Play again? (y/n)")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// WaitEnter blocks until a line is entered.
func (c *Console) WaitEnter() error {
	fmt.Fprint(c.out, view.Dim("Press Enter to continue..."))
	_, err := c.readLine()
	return err
}
