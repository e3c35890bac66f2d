package cmd

import (
	"github.com/spf13/cobra"

	"clitemplate/internal/cli"
)

func newHelloCmd(flags *cli.GlobalFlags) *cobra.Command {
	var capitalize bool

	cmd := &cobra.Command{
		Use:   "hello [name]",
		Short: "Say hello",
		Long: `Prints a greeting for name, or for the configured default name
(World unless hello.defaultName is set) when no name is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd, flags)
			if err != nil {
				return err
			}
			defer application.Close()

			name := application.DefaultName()
			if len(args) == 1 {
				name = args[0]
			}
			return application.Hello(name, capitalize)
		},
	}

	cmd.Flags().BoolVarP(&capitalize, "capitalize", "c", false, "Capitalize the greeting")
	return cmd
}
