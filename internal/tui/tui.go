package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/bowling-cli/internal/session"
)

// Model is the Bubble Tea model for a bowling game. Game output scrolls in
// the log pane and balls are typed into the input pane.
type Model struct {
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	rollInput   textinput.Model

	// State
	gameLog  []string
	prompt   string
	waiting  bool // a prompt is waiting for the player
	inputs   chan inputResult
	quitting bool

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

type inputResult struct {
	line string
	err  error
}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// printMsg appends session output to the log pane
type printMsg struct {
	text string
}

// promptMsg asks the player for the next line of input
type promptMsg struct {
	prompt string
}

// NewModel creates a new TUI model
func NewModel(logger *log.Logger) *Model {
	return NewModelWithOptions(logger, false)
}

// NewModelWithOptions creates a new TUI model with test mode option
func NewModelWithOptions(logger *log.Logger, testMode bool) *Model {
	// Sized properly when the first WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Pins knocked down (0-10), X or /"
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 40
	ti.PromptStyle = PromptStyle
	ti.TextStyle = InputStyle
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		rollInput:   ti,
		gameLog:     []string{},
		inputs:      make(chan inputResult, 1),
		testMode:    testMode,
		capturedLog: []string{},
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case printMsg:
		m.AddLogEntry(msg.text)

	case promptMsg:
		m.prompt = msg.prompt
		m.waiting = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.submit(inputResult{err: session.ErrAborted})
			return m, tea.Quit
		case "enter":
			if m.waiting {
				line := strings.TrimSpace(m.rollInput.Value())
				m.AddLogEntry(EchoStyle.Render(m.prompt + line))
				m.waiting = false
				m.rollInput.SetValue("")
				m.submit(inputResult{line: line})
			}
			return m, nil
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		case "home":
			m.logViewport.GotoTop()
		case "end":
			m.logViewport.GotoBottom()
		}
	}

	var cmd tea.Cmd
	m.rollInput, cmd = m.rollInput.Update(msg)
	cmds = append(cmds, cmd)

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit hands a line to the waiting session without blocking the UI
func (m *Model) submit(result inputResult) {
	select {
	case m.inputs <- result:
	default:
		m.logger.Warn("Dropped input, session is not reading", "line", result.line)
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render("Bowling Scorecard")

	inputContent := m.renderInputPane()
	inputHeight := lipgloss.Height(inputContent)

	inputWidth := max(m.width-2, 1)
	inputPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(FocusedBorderColor).
		Width(inputWidth).
		Render(inputContent)

	logWidth := max(m.width-2, 1)
	logHeight := max(m.height-inputHeight-lipgloss.Height(header)-4, 1) // borders on both panes

	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	if !m.initialized && logWidth > 1 && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Width(logWidth).
		Height(logHeight).
		Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, logPane, inputPane)
}

// renderInputPane renders the prompt, input field and key help
func (m *Model) renderInputPane() string {
	var content strings.Builder

	if m.waiting {
		content.WriteString(PromptStyle.Render(m.prompt))
	} else {
		content.WriteString(HelpStyle.Render("Waiting..."))
	}
	content.WriteString("\n")
	content.WriteString(m.rollInput.View())
	content.WriteString("\n")
	content.WriteString(HelpStyle.Render("Enter to submit • PgUp/PgDn to scroll • Ctrl+C to quit"))

	return content.String()
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	// In test mode, also capture the log entry
	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Prompt returns the prompt currently shown, or "" when none is waiting
func (m *Model) Prompt() string {
	if !m.waiting {
		return ""
	}
	return m.prompt
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *Model) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// InjectLine programmatically enters a line of input (test mode only)
func (m *Model) InjectLine(line string) error {
	if !m.testMode {
		return fmt.Errorf("input injection only available in test mode")
	}

	select {
	case m.inputs <- inputResult{line: line}:
		return nil
	default:
		return fmt.Errorf("input channel full")
	}
}

// IsTestMode returns whether the TUI is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}
