// Package cli holds the user-facing output layer shared by all commands.
//
// # Core Components
//
// Sink is the destination for every human-readable line a command emits:
// greetings, status titles before a demo, success notes and error reports.
// Console is the terminal implementation; it prefixes lines with colored
// icons (ℹ info, ✓ success, ⚠ warning, ✖ error) and sends errors to stderr.
//
// ExitError lets commands hand an exit status to cmd.Execute, which is the
// only place that terminates the process. A command that already reported
// its failure through the Sink returns NewReportedError so the failure is
// not printed twice.
//
// GlobalFlags and RegisterGlobalFlags define the persistent flags
// (--config-path, --debug, --no-color, --plain).
package cli
