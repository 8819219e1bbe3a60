package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Channel lets a session.Session talk to the player through a Model
type Channel struct {
	sender Sender
	model  *Model
}

// NewChannel creates a channel that sends output to program and reads input
// entered into model
func NewChannel(program Sender, model *Model) *Channel {
	return &Channel{sender: program, model: model}
}

// Print appends text to the log pane
func (c *Channel) Print(text string) {
	c.sender.Send(printMsg{text: text})
}

// ReadLine shows prompt and waits for the player to press Enter
func (c *Channel) ReadLine(ctx context.Context, prompt string) (string, error) {
	c.sender.Send(promptMsg{prompt: prompt})

	select {
	case result := <-c.model.inputs:
		return result.line, result.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
