package cli

import (
	"os"

	"github.com/spf13/cobra"

	"clitemplate/internal/config"
)

// GlobalFlags holds the persistent flag values shared by every command.
type GlobalFlags struct {
	// ConfigPath is the configuration directory containing config.yaml
	ConfigPath string
	// Debug enables diagnostic logging on stderr
	Debug bool
	// NoColor disables ANSI colors in all output
	NoColor bool
	// Plain forces line-mode prompts even on a terminal
	Plain bool
}

// RegisterGlobalFlags registers the persistent flags on the root command.
//
// The registered flags are:
//   - --config-path: Configuration directory (env: CLI_TEMPLATE_CONFIG_PATH)
//   - --debug: Enable diagnostic logging
//   - --no-color: Disable colored output (also honoured via NO_COLOR)
//   - --plain: Use line-mode prompts instead of the arrow-key menu
func RegisterGlobalFlags(cmd *cobra.Command, flags *GlobalFlags, defaultConfigPath string) {
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config-path", defaultConfigPath, "Configuration directory (env: "+config.ConfigPathEnv+")")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&flags.Plain, "plain", false, "Use line-mode prompts instead of the interactive menu")
}

// ColorDisabled reports whether colors are turned off by flag or by the NO_COLOR convention.
func (f *GlobalFlags) ColorDisabled() bool {
	if f.NoColor {
		return true
	}
	noColor := os.Getenv("NO_COLOR")
	return noColor != "" && noColor != "0"
}
