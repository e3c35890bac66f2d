package app

import (
	"io"

	"clitemplate/internal/cli"
	"clitemplate/internal/config"
	"clitemplate/internal/prompt"
)

// Config holds the application configuration
type Config struct {
	// Debug enables diagnostic logging on ErrOut
	Debug bool

	// NoColor disables ANSI colors regardless of the config file
	NoColor bool

	// Plain forces line-mode prompts
	Plain bool

	// Configuration directory containing config.yaml
	ConfigPath string

	// Version is the resolved build version
	Version string

	// Standard streams. Nil values fall back to os.Stdin, os.Stdout and os.Stderr.
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Optional collaborators, mainly for tests. When nil they are built from
	// the streams above.
	Sink     cli.Sink
	Prompter prompt.Provider

	// Settings loaded from config.yaml. When set, loading is skipped.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug, noColor, plain bool, configPath, version string) *Config {
	return &Config{
		Debug:      debug,
		NoColor:    noColor,
		Plain:      plain,
		ConfigPath: configPath,
		Version:    version,
	}
}
