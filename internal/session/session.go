// Package session drives an interactive bowling game: it prompts for each
// ball, translates the player's text into pin counts, feeds the score card
// and prints the card after every frame.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/bowling-cli/internal/display"
	"github.com/lox/bowling-cli/internal/game"
	"github.com/lox/bowling-cli/internal/gameid"
)

// ErrAborted is returned when the player quits before the game is complete
var ErrAborted = errors.New("session: aborted")

// Messages shown when a ball has to be entered again
const (
	invalidNumberMsg = "Please enter a valid number."
	tooManyPinsMsg   = "Too many pins selected. Try again."
)

// Result describes a finished game
type Result struct {
	GameID   string
	Summary  game.Summary
	Frames   []game.Frame
	Started  time.Time
	Finished time.Time
}

// Duration returns how long the game took
func (r Result) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Session plays one game over a Channel
type Session struct {
	card     *game.ScoreCard
	channel  Channel
	renderer *display.Renderer
	logger   *log.Logger
	clock    quartz.Clock
	gameID   string

	showEachFrame bool
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the clock used for timing and game IDs
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithGameID sets the game ID instead of generating one
func WithGameID(id string) Option {
	return func(s *Session) {
		s.gameID = id
	}
}

// WithScorecardEachFrame controls whether the card is printed after every
// frame or only at the end
func WithScorecardEachFrame(show bool) Option {
	return func(s *Session) {
		s.showEachFrame = show
	}
}

// New creates a session for a fresh game
func New(channel Channel, renderer *display.Renderer, logger *log.Logger, opts ...Option) *Session {
	s := &Session{
		card:          game.NewScoreCard(),
		channel:       channel,
		renderer:      renderer,
		clock:         quartz.NewReal(),
		showEachFrame: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.gameID == "" {
		id, err := gameid.NewGenerator(s.clock, nil).Generate()
		if err != nil {
			logger.Warn("Failed to generate game ID", "error", err)
		}
		s.gameID = id
	}
	s.logger = logger.With("game", s.gameID)

	return s
}

// GameID returns the ID used to tag this game's log lines
func (s *Session) GameID() string {
	return s.gameID
}

// ScoreCard returns the card being played
func (s *Session) ScoreCard() *game.ScoreCard {
	return s.card
}

// Play runs the game to completion. It returns ErrAborted if the player
// quits, or the context's error if ctx is cancelled.
func (s *Session) Play(ctx context.Context) (Result, error) {
	started := s.clock.Now()
	s.logger.Info("Starting game")

	s.channel.Print(s.renderer.Welcome())

	for frame := 1; frame <= game.NumFrames; frame++ {
		if err := s.playFrame(ctx, frame); err != nil {
			s.logger.Info("Game ended early", "frame", frame, "error", err)
			return Result{}, err
		}
		if s.showEachFrame {
			s.channel.Print(s.renderer.Scorecard(s.card.Frames()))
		}
	}

	result := Result{
		GameID:   s.gameID,
		Summary:  s.card.Summary(),
		Frames:   s.card.Frames(),
		Started:  started,
		Finished: s.clock.Now(),
	}

	s.logger.Info("Game complete",
		"total", result.Summary.Total,
		"strikes", result.Summary.Strikes,
		"open_frames", result.Summary.OpenFrames,
		"duration", result.Duration())

	if !s.showEachFrame {
		s.channel.Print(s.renderer.Scorecard(result.Frames))
	}
	s.channel.Print(s.renderer.Summary(result.Summary))
	s.channel.Print(s.renderer.Farewell())

	return result, nil
}

func (s *Session) playFrame(ctx context.Context, frame int) error {
	if err := s.promptRoll(ctx, frame, 1, s.card.RecordFirstRoll); err != nil {
		return err
	}
	if s.card.NeedsSecondRoll(frame) {
		if err := s.promptRoll(ctx, frame, 2, s.card.RecordSecondRoll); err != nil {
			return err
		}
	}

	if err := s.card.ResolveFrame(frame); err != nil {
		return fmt.Errorf("failed to resolve frame %d: %w", frame, err)
	}
	f, _ := s.card.Frame(frame)
	s.logger.Info("Frame resolved",
		"frame", frame,
		"result", display.FrameResult(f),
		"running_total", f.RunningTotal)

	if frame == game.NumFrames && s.card.NeedsThirdRoll() {
		recordThird := func(_ int, pins int) error {
			return s.card.RecordThirdRoll(pins)
		}
		if err := s.promptRoll(ctx, frame, 3, recordThird); err != nil {
			return err
		}
		s.logger.Info("Bonus ball recorded", "total", s.card.TotalScore())
	}

	return nil
}

// promptRoll asks for one ball until the player enters a count the card
// accepts
func (s *Session) promptRoll(ctx context.Context, frame, ball int, record func(frame, pins int) error) error {
	prompt := fmt.Sprintf("Enter score for frame %d roll %d: ", frame, ball)

	for {
		line, err := s.channel.ReadLine(ctx, prompt)
		if err != nil {
			if errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) {
				return err
			}
			return fmt.Errorf("%w: %w", ErrAborted, err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit", "q":
			return ErrAborted
		case "help", "?":
			s.channel.Print(s.renderer.Instructions())
			continue
		}

		rack, err := s.card.Rack(frame, ball)
		if err != nil {
			return fmt.Errorf("failed to read rack for frame %d roll %d: %w", frame, ball, err)
		}

		pins, err := ParseRoll(line, rack)
		if err != nil {
			s.logger.Debug("Rejected input", "frame", frame, "roll", ball, "input", line, "error", err)
			s.channel.Print(s.renderer.Notice(invalidNumberMsg))
			continue
		}

		if err := record(frame, pins); err != nil {
			if errors.Is(err, game.ErrInvalidPinCount) {
				s.logger.Debug("Rejected roll", "frame", frame, "roll", ball, "pins", pins, "error", err)
				s.channel.Print(s.renderer.Notice(tooManyPinsMsg))
				continue
			}
			return fmt.Errorf("failed to record frame %d roll %d: %w", frame, ball, err)
		}

		s.logger.Debug("Recorded roll", "frame", frame, "roll", ball, "pins", pins)
		return nil
	}
}
