package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartolsthoorn/goscip/scip"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print scipsolve and SCIP versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scipsolve %s\n", Version)

			m, err := scip.TryNew(scip.WithDriver(rootOpts.Driver))
			if err != nil {
				return WrapExitError(ExitCommandError, "starting SCIP", err)
			}
			defer m.Close()
			fmt.Fprintf(out, "SCIP %s\n", m.Version())
			return nil
		},
	}
}
