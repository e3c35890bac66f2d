package config

import "time"

// Config is the content of config.yaml.
type Config struct {
	Hello    HelloConfig    `yaml:"hello"`
	Table    TableConfig    `yaml:"table"`
	Progress ProgressConfig `yaml:"progress"`
	Output   OutputConfig   `yaml:"output"`
	Prompt   PromptConfig   `yaml:"prompt"`
}

// HelloConfig configures the greeting.
type HelloConfig struct {
	// DefaultName is greeted when no name is given.
	DefaultName string `yaml:"defaultName"`
}

// TableConfig configures the table command.
type TableConfig struct {
	// DefaultStyle is used when --style is not passed.
	DefaultStyle string `yaml:"defaultStyle"`
}

// ProgressConfig configures the progress command.
type ProgressConfig struct {
	// DefaultType is used when --type is not passed.
	DefaultType string       `yaml:"defaultType"`
	Pacing      PacingConfig `yaml:"pacing"`
}

// PacingConfig holds the delay between animation steps of each progress example.
type PacingConfig struct {
	Simple time.Duration `yaml:"simple"`
	Custom time.Duration `yaml:"custom"`
	Multi  time.Duration `yaml:"multi"`
}

// OutputConfig configures terminal output.
type OutputConfig struct {
	// Color enables ANSI colors. --no-color and NO_COLOR override it.
	Color bool `yaml:"color"`
}

// PromptConfig configures the interactive prompts.
type PromptConfig struct {
	// Plain selects line-mode prompts even on a terminal.
	Plain bool `yaml:"plain"`
}
