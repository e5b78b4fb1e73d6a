// Command scipsolve solves problem files with SCIP.
package main

import (
	"fmt"
	"os"

	"github.com/bartolsthoorn/goscip/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
