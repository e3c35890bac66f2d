package cmd

import (
	"github.com/spf13/cobra"

	"clitemplate/internal/cli"
	"clitemplate/internal/demo"
)

func newProgressCmd(flags *cli.GlobalFlags) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show progress bar examples",
		Long: `Animates example progress bars.

Types:
  simple  a single bar counting to 100
  custom  a styled bar with changing task messages and an ETA
  multi   three concurrent bars for simulated file processing
  all     every type above, in that order`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd, flags)
			if err != nil {
				return err
			}
			defer application.Close()

			selected := ""
			if cmd.Flags().Changed("type") {
				selected = kind
			}
			return application.RunProgress(cmd.Context(), selected)
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", demo.ProgressSimple.String(), "Progress bar type (simple, custom, multi, all)")
	return cmd
}
