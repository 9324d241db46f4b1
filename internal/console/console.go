// Package console reads player actions from an interactive terminal.
// Every seat is played from the same keyboard.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/lox/holdem-rules/internal/display"
	"github.com/lox/holdem-rules/internal/game"
)

// ErrQuit is returned when the user asks to leave the table
var ErrQuit = errors.New("quit")

// LineReader is the part of *readline.Instance the console needs
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

const help = `Commands:
  bet <n>  (b)   put n chips in this stage
  call     (c)   match the minimum call
  allin    (a)   bet everything
  check    (k)   pass when nothing is owed
  fold     (f)   give up the hand
  info     (i)   show your cards and stakes
  help     (?)   show this help
  quit           leave the table`

// Console prompts for actions on a terminal
type Console struct {
	rl      LineReader
	printer *display.Printer
	logger  *log.Logger
}

// New opens a readline session on the terminal with command completion
func New(printer *display.Printer, logger *log.Logger, historyFile string) (*Console, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("bet"),
		readline.PcItem("call"),
		readline.PcItem("allin"),
		readline.PcItem("check"),
		readline.PcItem("fold"),
		readline.PcItem("info"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	return NewWithReader(rl, printer, logger), nil
}

// NewWithReader builds a console on any line source
func NewWithReader(rl LineReader, printer *display.Printer, logger *log.Logger) *Console {
	return &Console{rl: rl, printer: printer, logger: logger}
}

// Close releases the terminal
func (c *Console) Close() error {
	return c.rl.Close()
}

// NextAction shows the table from p's seat and reads a command. Lines that
// do not parse are reported and read again. It returns ErrQuit on quit or
// end of input.
func (c *Console) NextAction(ctx context.Context, view game.Snapshot, p *game.Player) (game.Action, error) {
	c.printer.ShowTable(view)
	if self, ok := view.Viewer(); ok {
		c.rl.SetPrompt(c.printer.Prompt(self, view.MinimumCall))
	}

	for {
		if err := ctx.Err(); err != nil {
			return game.Action{}, err
		}

		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			c.printer.ShowInfo("Use 'quit' to exit")
			continue
		}
		if errors.Is(err, io.EOF) {
			return game.Action{}, ErrQuit
		}
		if err != nil {
			return game.Action{}, err
		}

		line = strings.TrimSpace(line)
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit", "q":
			return game.Action{}, ErrQuit
		case "help", "?":
			c.printer.ShowInfo(help)
			continue
		}

		action, err := game.ParseCommand(line)
		if err != nil {
			c.Rejected(p, err)
			continue
		}
		c.logger.Debug("Read action", "player", p.Name, "action", action)
		return action, nil
	}
}

// Rejected reports a refused action so the player can try again
func (c *Console) Rejected(p *game.Player, err error) {
	c.printer.ShowError(err)
}
