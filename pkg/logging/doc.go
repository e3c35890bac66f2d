// Package logging provides the diagnostic logger for cli-template.
//
// It is a thin layer over Go's slog package that tags every record with a
// subsystem name and filters by level. Diagnostic logs are separate from the
// lines commands print for the user (greetings, tables, error reports), which
// go through the console sink in internal/cli.
//
// # Usage
//
//	logging.Init(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("Menu", "session %s selected %s", id, action)
//	logging.Info("Config", "Loaded configuration from %s", path)
//	logging.Warn("Prompt", "stdin is not a terminal, falling back to line mode")
//	logging.Error("Showcase", err, "Failed to render %s", title)
//
// # Subsystems
//
//   - **Bootstrap**: application wiring and flag handling
//   - **Config**: configuration loading and validation
//   - **Menu**: interactive session transitions
//   - **Prompt**: prompt provider selection and input handling
//   - **Showcase**: table and progress demos
//   - **SelfUpdate**: release detection and binary replacement
//
// Before Init is called only error records are emitted, directly to stderr.
// Init may be called again to change level or output; it is safe for
// concurrent use.
package logging
