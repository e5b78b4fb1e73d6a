// Package cli implements the scipsolve command line tool.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// Version is the scipsolve version, set at build time with -ldflags.
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "text" | "json"
	LogFormat string // "console" | "json"
	Driver    string
}

// ValidFormats defines the allowed report formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for scipsolve.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "scipsolve",
		Short: "Solve mixed integer programs with SCIP",
		Long: `scipsolve reads a problem file, solves it with SCIP and reports the result.

Examples:
  scipsolve solve problem.lp
  scipsolve solve --params params.yaml --time-limit 30s problem.mps
  scipsolve version`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging and SCIP console output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "report format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "console", "log format (console|json)")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "scip", "engine driver")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}
