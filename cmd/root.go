package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"

	"clitemplate/internal/app"
	"clitemplate/internal/cli"
	"clitemplate/internal/config"
)

// devVersion is reported when no release version was injected at build time.
const devVersion = "dev"

// rootCmd represents the base command for the cli-template application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = newRootCmd()

// newRootCmd builds the command tree. Each tree owns its global flag values,
// so tests can build fresh ones.
func newRootCmd() *cobra.Command {
	flags := &cli.GlobalFlags{}

	root := &cobra.Command{
		Use:   "cli-template",
		Short: "A starter template for command-line applications",
		Long: `cli-template is a starting point for command-line tools. It shows
a greeting command, an interactive menu, table output and progress bars.`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		// Errors are printed once by Execute, or were already reported by the command.
		SilenceErrors: true,
	}
	root.SetVersionTemplate(`{{printf "cli-template version %s\n" .Version}}`)

	cli.RegisterGlobalFlags(root, flags, config.GetDefaultConfigPathOrPanic())

	root.AddCommand(newHelloCmd(flags))
	root.AddCommand(newInteractiveCmd(flags))
	root.AddCommand(newTableCmd(flags))
	root.AddCommand(newProgressCmd(flags))
	root.AddCommand(newVersionCmd())
	root.AddCommand(newSelfUpdateCmd())
	return root
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = resolveVersion(v)
}

// GetVersion returns the current version of the application.
// This can be used by other commands to access the build version.
func GetVersion() string {
	return rootCmd.Version
}

// resolveVersion prefers the injected version, then the module version
// recorded by `go install`, then devVersion.
func resolveVersion(v string) string {
	if v != "" && v != devVersion {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			return mv
		}
	}
	return devVersion
}

// Execute is the main entry point for the CLI application.
// It runs the root command and is the only place that exits the process.
// This function is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		// A second interrupt terminates the process even if a prompt is blocked.
		<-ctx.Done()
		stop()
	}()

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(handleError(err, rootCmd.ErrOrStderr()))
	}
}

// handleError prints err unless a command already reported it and returns
// the exit code for it.
func handleError(err error, errOut io.Writer) int {
	if err == nil {
		return cli.ExitCodeSuccess
	}
	if !cli.IsReported(err) {
		fmt.Fprintln(errOut, cli.FormatError("Error: "+err.Error()))
	}
	return cli.ExitCode(err)
}

// newApplication bootstraps the application for cmd using the global flags
// and the command's streams.
func newApplication(cmd *cobra.Command, flags *cli.GlobalFlags) (*app.Application, error) {
	cfg := app.NewConfig(flags.Debug, flags.ColorDisabled(), flags.Plain, flags.ConfigPath, cmd.Root().Version)
	cfg.In = cmd.InOrStdin()
	cfg.Out = cmd.OutOrStdout()
	cfg.ErrOut = cmd.ErrOrStderr()
	return app.NewApplication(cfg)
}
