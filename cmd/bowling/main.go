package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/bowling-cli/internal/config"
	"github.com/lox/bowling-cli/internal/display"
	"github.com/lox/bowling-cli/internal/session"
	"github.com/lox/bowling-cli/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"bowling.hcl" help:"Path to HCL configuration file"`
	TUI      bool             `name:"tui" help:"Play in a full-screen terminal UI (overrides config)"`
	NoColor  bool             `help:"Disable colours and text styling (overrides config)"`
	LogLevel string           `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	LogFile  string           `help:"Log file path (overrides config)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bowling"),
		kong.Description("Score a game of ten-pin bowling, one ball at a time"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run loads configuration and plays one game
func (c *CLI) Run() error {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.applyOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "BOWLING",
		Level:           cfg.LogLevel(),
	})
	logger.Info("Starting bowling", "version", version, "mode", cfg.UI.Mode, "config", c.Config)

	ctx := setupSignalHandler(logger)

	if cfg.UI.Mode == config.ModeTUI {
		err = playTUI(ctx, cfg, logger)
	} else {
		err = playPrompt(ctx, cfg, logger)
	}

	if errors.Is(err, session.ErrAborted) || errors.Is(err, context.Canceled) {
		logger.Info("Game abandoned", "error", err)
		return nil
	}
	return err
}

// applyOverrides copies flags given on the command line over the config
func (c *CLI) applyOverrides(cfg *config.Config) {
	if c.TUI {
		cfg.UI.Mode = config.ModeTUI
	}
	if c.NoColor {
		cfg.UI.Theme = config.ThemePlain
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
}

func playPrompt(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	console, err := session.NewConsole(session.ConsoleConfig{
		HistoryFile: cfg.UI.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("failed to open console: %w", err)
	}
	defer func() { _ = console.Close() }()

	renderer := display.NewRenderer(os.Stdout, cfg.Plain())
	game := session.New(console, renderer, logger,
		session.WithScorecardEachFrame(cfg.ShowScorecardEachFrame()))

	_, err = game.Play(ctx)
	return err
}

func playTUI(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	renderer := display.NewRenderer(os.Stdout, cfg.Plain())

	return tui.Run(ctx, logger, func(ctx context.Context, channel session.Channel) error {
		game := session.New(channel, renderer, logger,
			session.WithScorecardEachFrame(cfg.ShowScorecardEachFrame()))
		_, err := game.Play(ctx)
		return err
	})
}
