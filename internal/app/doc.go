// Package app provides application bootstrap for cli-template commands.
//
// # Bootstrap
//
// NewApplication runs the bootstrap sequence shared by every command:
//
//   - Logging: diagnostic logs go to stderr at warn level, or debug level
//     with --debug
//   - Configuration: config.yaml is loaded from the configuration directory;
//     a missing file yields the defaults
//   - Colors: disabled by --no-color, NO_COLOR or output.color: false
//   - Services: the console sink, the prompt provider and the demo showcase
//
// # Modes
//
// The Application exposes one method per command: Hello, RunInteractive,
// RunTables and RunProgress. Failures are reported once through the sink and
// returned as *cli.ExitError values with Reported set, so the caller only has
// to turn them into an exit status.
//
// The prompt provider is created lazily. Commands that never prompt do not
// read from stdin.
package app
