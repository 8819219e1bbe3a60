package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Interaction modes
const (
	ModePrompt = "prompt"
	ModeTUI    = "tui"
)

// Themes
const (
	ThemeDefault = "default"
	ThemePlain   = "plain"
)

// Config represents the complete bowling configuration
type Config struct {
	UI  *UISettings  `hcl:"ui,block"`
	Log *LogSettings `hcl:"log,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	Mode               string `hcl:"mode,optional"`
	Theme              string `hcl:"theme,optional"`
	ScorecardEachFrame *bool  `hcl:"scorecard_each_frame,optional"`
	HistoryFile        string `hcl:"history_file,optional"`
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	showEachFrame := true
	return &Config{
		UI: &UISettings{
			Mode:               ModePrompt,
			Theme:              ThemeDefault,
			ScorecardEachFrame: &showEachFrame,
			HistoryFile:        "",
		},
		Log: &LogSettings{
			Level: "info",
			File:  "bowling.log",
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults(DefaultConfig())
	return &config, nil
}

func (c *Config) applyDefaults(defaults *Config) {
	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.Log == nil {
		c.Log = defaults.Log
	}

	if c.UI.Mode == "" {
		c.UI.Mode = defaults.UI.Mode
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.ScorecardEachFrame == nil {
		c.UI.ScorecardEachFrame = defaults.UI.ScorecardEachFrame
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validModes := map[string]bool{
		ModePrompt: true,
		ModeTUI:    true,
	}
	if !validModes[c.UI.Mode] {
		return fmt.Errorf("invalid mode: %s", c.UI.Mode)
	}

	validThemes := map[string]bool{
		ThemeDefault: true,
		ThemePlain:   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.File == "" {
		return fmt.Errorf("log file is required")
	}

	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Plain reports whether output should be rendered without colour
func (c *Config) Plain() bool {
	return c.UI.Theme == ThemePlain
}

// ShowScorecardEachFrame reports whether the scorecard is printed after every frame
func (c *Config) ShowScorecardEachFrame() bool {
	return c.UI.ScorecardEachFrame == nil || *c.UI.ScorecardEachFrame
}
