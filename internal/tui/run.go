package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/bowling-cli/internal/session"
)

// PlayFunc plays a game over the given channel
type PlayFunc func(ctx context.Context, channel session.Channel) error

// Run starts a full-screen program and plays a game in it. It returns when
// the game ends and the player dismisses the screen, or when ctx is done.
func Run(ctx context.Context, logger *log.Logger, play PlayFunc) error {
	model := NewModel(logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	channel := NewChannel(program, model)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// Closing the screen stops the game
		defer cancel()
		_, err := program.Run()
		return err
	})

	g.Go(func() error {
		defer program.Send(QuitMsg{})

		if err := play(ctx, channel); err != nil {
			return err
		}

		logger.Debug("Game finished, waiting for player to exit")
		_, _ = channel.ReadLine(ctx, "Press Enter to exit ")
		return nil
	})

	return g.Wait()
}
