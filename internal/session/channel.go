package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// Channel is the text prompt/response surface a session plays through
type Channel interface {
	// ReadLine shows prompt and blocks until a line of input arrives
	ReadLine(ctx context.Context, prompt string) (string, error)
	// Print writes a block of text to the player
	Print(text string)
}

// ConsoleConfig configures a Console. Nil streams use the process's stdin
// and stdout.
type ConsoleConfig struct {
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// Console is a Channel on a line-editing terminal
type Console struct {
	rl *readline.Instance
}

// NewConsole creates a console with input history and completion for the
// roll shorthand and commands.
func NewConsole(cfg ConsoleConfig) (*Console, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem(StrikeToken),
		readline.PcItem(SpareToken),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create console: %w", err)
	}

	return &Console{rl: rl}, nil
}

// ReadLine implements Channel. Interrupts abort the session; cancelling ctx
// closes the console so a pending read returns.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	stop := context.AfterFunc(ctx, func() {
		_ = c.rl.Close()
	})
	defer stop()

	c.rl.SetPrompt(prompt)
	line, err := c.rl.Readline()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrAborted
	}
	return line, err
}

// Print implements Channel
func (c *Console) Print(text string) {
	_, _ = fmt.Fprintln(c.rl.Stdout(), text)
}

// Close releases the terminal
func (c *Console) Close() error {
	return c.rl.Close()
}
