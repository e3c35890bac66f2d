package cmd

import (
	"github.com/spf13/cobra"

	"clitemplate/internal/cli"
)

func newInteractiveCmd(flags *cli.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start the interactive menu",
		Long: `Shows a menu to say hello, print the version or run the table and
progress bar examples. One selection is handled per run.

Arrow-key menus are used on a terminal. Use --plain, or pipe the answers on
stdin, to get numbered line-based prompts instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd, flags)
			if err != nil {
				return err
			}
			defer application.Close()

			return application.RunInteractive(cmd.Context())
		},
	}
}
