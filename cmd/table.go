package cmd

import (
	"github.com/spf13/cobra"

	"clitemplate/internal/cli"
	"clitemplate/internal/demo"
)

func newTableCmd(flags *cli.GlobalFlags) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Display table examples",
		Long: `Renders example tables.

Styles:
  simple   plain table with fixed column widths
  complex  rounded table with colored cells and a footer
  custom   table with a custom border style and row separators
  all      every style above, in that order`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd, flags)
			if err != nil {
				return err
			}
			defer application.Close()

			// An empty style selects the configured default.
			selected := ""
			if cmd.Flags().Changed("style") {
				selected = style
			}
			return application.RunTables(cmd.Context(), selected)
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", demo.TableSimple.String(), "Table style (simple, complex, custom, all)")
	return cmd
}
