package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"clitemplate/internal/cli"
	"clitemplate/pkg/logging"
)

// githubRepoSlug specifies the GitHub repository (owner/repo) to check for updates.
const githubRepoSlug = "clitemplate/cli-template"

// newSelfUpdateCmd creates the Cobra command for the self-update functionality.
// This allows the application to update itself to the latest version from GitHub.
func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update cli-template to the latest version",
		Long: `Checks for the latest release of cli-template on GitHub and
updates the current binary if a newer version is found.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

// runSelfUpdate checks the current version against the latest GitHub release
// and replaces the running binary when a newer one exists.
func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := cmd.Root().Version
	// Development builds do not follow semantic versioning.
	if currentVersion == "" || currentVersion == devVersion {
		return fmt.Errorf("cannot self-update a development version")
	}

	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	fmt.Fprintln(out, cli.FormatInfo("Current version: "+currentVersion))

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " Checking for updates..."
	s.Start()
	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(githubRepoSlug))
	s.Stop()
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest release for %s could not be found", githubRepoSlug)
	}
	logging.Debug("SelfUpdate", "Latest release of %s is %s", githubRepoSlug, latest.Version())

	if !latest.GreaterThan(currentVersion) {
		fmt.Fprintln(out, cli.FormatSuccess("Current version is the latest."))
		return nil
	}

	fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Found newer version: %s (published at %s)", latest.Version(), latest.PublishedAt)))
	fmt.Fprintf(out, "Release notes:\n%s\n", latest.ReleaseNotes)

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	s.Suffix = fmt.Sprintf(" Updating %s to version %s...", exe, latest.Version())
	s.Start()
	err = updater.UpdateTo(ctx, latest, exe)
	s.Stop()
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess("Successfully updated to version "+latest.Version()))
	return nil
}
